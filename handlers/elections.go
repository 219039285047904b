// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/scrutinapp/scrutin/auth"
	"github.com/scrutinapp/scrutin/cliparse"
	"github.com/scrutinapp/scrutin/invite"
	"github.com/scrutinapp/scrutin/middleware"
	"github.com/scrutinapp/scrutin/models"
	"github.com/scrutinapp/scrutin/store"
)

type ElectionHandler struct {
	db       *sql.DB
	cfg      cliparse.Config
	notifier invite.Notifier
}

func NewElectionHandler(db *sql.DB, cfg cliparse.Config, notifier invite.Notifier) *ElectionHandler {
	return &ElectionHandler{db: db, cfg: cfg, notifier: notifier}
}

// CreateElection handles POST /elections
func (h *ElectionHandler) CreateElection(w http.ResponseWriter, r *http.Request) {
	var req models.CreateElectionRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.Title == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "title is required")
		return
	}
	if err := h.validateParams(&req); err != nil {
		middleware.WriteError(w, err)
		return
	}

	now := time.Now().Unix()
	election := &models.Election{
		ID:               uuid.NewString(),
		Title:            req.Title,
		Candidates:       req.Candidates,
		NumGrades:        req.NumGrades,
		StartAt:          req.StartAt,
		FinishAt:         req.FinishAt,
		OnInvitationOnly: req.OnInvitationOnly,
		RestrictResults:  req.RestrictResults,
		CreatedAt:        now,
	}
	election.Ref = auth.GenerateRef(election.ID, h.cfg.RefSalt)

	tokens := make([]*models.Token, 0, len(req.ElectorEmails))
	for _, email := range req.ElectorEmails {
		tokens = append(tokens, invite.NewToken(election.ID, email))
	}

	// Election and its tokens become visible together or not at all.
	if err := store.InsertElection(h.db, election, tokens); err != nil {
		slog.Error("failed to insert election", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to create election")
		return
	}

	for _, token := range tokens {
		h.notifier.InvitationCreated(election, token.Email, token.ID)
	}

	slog.Info("election created",
		"election_id", election.ID,
		"ref", election.Ref,
		"candidates", len(election.Candidates),
		"invites", len(tokens),
	)

	middleware.JSONResponse(w, http.StatusCreated, models.CreateElectionResponse{
		Election:   *election,
		NumInvites: len(tokens),
	})
}

func (h *ElectionHandler) validateParams(req *models.CreateElectionRequest) error {
	if len(req.Candidates) < 1 || len(req.Candidates) > h.cfg.MaxCandidates {
		return models.ErrMalformedVote
	}
	for _, name := range req.Candidates {
		if name == "" {
			return models.ErrMalformedVote
		}
	}
	if req.NumGrades < 2 || req.NumGrades > h.cfg.MaxGrades {
		return models.ErrMalformedVote
	}
	if req.StartAt >= req.FinishAt {
		return models.ErrMalformedVote
	}
	return nil
}

// GetElection handles GET /elections/{id}
// The path value may be the election's ID or its ref; details stay hidden
// until the election has started.
func (h *ElectionHandler) GetElection(w http.ResponseWriter, r *http.Request) {
	idOrRef := r.PathValue("id")
	if idOrRef == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "election id is required")
		return
	}

	election, err := store.FindElection(h.db, idOrRef)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	if election.State(time.Now()) == models.StateNotStarted {
		middleware.WriteError(w, models.ErrNotStarted)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, election)
}
