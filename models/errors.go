// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "net/http"

// APIError is a typed, recoverable-by-caller failure. Every user-visible
// failure maps to a stable code and an HTTP status; the mapping is total so
// no failure path is silently swallowed.
type APIError struct {
	Code    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Code + ": " + e.Message
}

// Error codes carried over from the original API so existing clients keep
// working.
var (
	ErrUnknownElection = &APIError{"E1", http.StatusBadRequest, "Unknown election"}
	ErrOngoingElection = &APIError{"E2", http.StatusBadRequest, "Ongoing election"}
	ErrNoRecordedVote  = &APIError{"E3", http.StatusBadRequest, "No recorded vote"}
	ErrNotStarted      = &APIError{"E4", http.StatusUnauthorized, "Election not started"}
	ErrFinished        = &APIError{"E5", http.StatusUnauthorized, "Election finished"}
	ErrInvitationOnly  = &APIError{"E6", http.StatusBadRequest, "Election on invitation only, please provide token"}
	ErrUnknownToken    = &APIError{"E7", http.StatusBadRequest, "Wrong token"}
	ErrTokenUsed       = &APIError{"E8", http.StatusBadRequest, "Token already used"}
	ErrMalformedVote   = &APIError{"E9", http.StatusBadRequest, "Parameters for the election are incorrect"}

	// ErrInconsistentDB signals a persistence-layer invariant violation
	// (several rows sharing one identity). It is never caused by user input
	// and must be logged wherever it surfaces.
	ErrInconsistentDB = &APIError{"E10", http.StatusInternalServerError, "Inconsistent database"}
)
