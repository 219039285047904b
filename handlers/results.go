// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/scrutinapp/scrutin/cliparse"
	"github.com/scrutinapp/scrutin/middleware"
	"github.com/scrutinapp/scrutin/models"
	"github.com/scrutinapp/scrutin/store"
	"github.com/scrutinapp/scrutin/tally"
)

type ResultsHandler struct {
	db  *sql.DB
	cfg cliparse.Config
}

func NewResultsHandler(db *sql.DB, cfg cliparse.Config) *ResultsHandler {
	return &ResultsHandler{db: db, cfg: cfg}
}

// GetResults handles GET /elections/{id}/results
//
// On elections with restricted results the ranking stays sealed until the
// voting window closes. The tally itself is read-only: votes are read once,
// then profiles, majority values and the ranking are derived in memory.
func (h *ResultsHandler) GetResults(w http.ResponseWriter, r *http.Request) {
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

	if election.RestrictResults && election.State(time.Now()) != models.StateClosed {
		middleware.WriteError(w, models.ErrOngoingElection)
		return
	}

	votes, err := store.ListVotes(h.db, election.ID)
	if err != nil {
		middleware.WriteError(w, err)
		return
	}
	if len(votes) == 0 {
		middleware.WriteError(w, models.ErrNoRecordedVote)
		return
	}

	profiles, err := tally.MeritProfiles(votes, len(election.Candidates), election.NumGrades)
	if err != nil {
		// Recorded votes that no longer match the election shape mean the
		// store's invariants are broken, not that the request is bad.
		middleware.WriteError(w, fmt.Errorf("%v: %w", err, models.ErrInconsistentDB))
		return
	}

	values := make([]tally.MajorityValue, len(profiles))
	for i, p := range profiles {
		values[i] = tally.MajorityValueOf(p)
	}

	candidates := make([]models.CandidateResult, 0, len(profiles))
	for _, ranked := range tally.Rank(values) {
		candidates = append(candidates, models.CandidateResult{
			Name:          election.Candidates[ranked.Candidate],
			Index:         ranked.Candidate,
			MeritProfile:  profiles[ranked.Candidate],
			MajorityGrade: ranked.Value.Grade,
		})
	}

	middleware.JSONResponse(w, http.StatusOK, models.ResultsResponse{
		ElectionID: election.ID,
		VoteCount:  len(votes),
		Candidates: candidates,
	})
}
