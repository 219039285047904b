// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/scrutinapp/scrutin/cliparse"
	"github.com/scrutinapp/scrutin/middleware"
	"github.com/scrutinapp/scrutin/models"
	"github.com/scrutinapp/scrutin/store"
)

type VotingHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewVotingHandler(db *sql.DB, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{db: db, cfg: cfg}
}

// SubmitVote handles POST /elections/{id}/votes
//
// A vote passes the window guard, then the invitation token gate, then
// grade validation, and only then reaches storage. On invitation-only
// elections the token is redeemed in the same transaction that records the
// vote, so a token can never authorize two votes.
func (h *VotingHandler) SubmitVote(w http.ResponseWriter, r *http.Request) {
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

	switch election.State(time.Now()) {
	case models.StateNotStarted:
		middleware.WriteError(w, models.ErrNotStarted)
		return
	case models.StateClosed:
		middleware.WriteError(w, models.ErrFinished)
		return
	}

	var req models.SubmitVoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if election.OnInvitationOnly && req.Token == "" {
		middleware.WriteError(w, models.ErrInvitationOnly)
		return
	}

	// Last gate before anything is written.
	if err := models.ValidateGrades(req.Grades, len(election.Candidates), election.NumGrades); err != nil {
		middleware.WriteError(w, err)
		return
	}

	var voteID string
	if election.OnInvitationOnly {
		voteID, err = store.MarkUsedAndAppendVote(h.db, election.ID, req.Token, req.Grades)
	} else {
		// A supplied token is ignored on open elections.
		voteID, err = store.AppendVote(h.db, election.ID, req.Grades)
	}
	if err != nil {
		middleware.WriteError(w, err)
		return
	}

	slog.Info("vote recorded", "election_id", election.ID, "vote_id", voteID)

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitVoteResponse{
		VoteID: voteID,
	})
}
