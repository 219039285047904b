// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Election window states
const (
	StateNotStarted = "not_started"
	StateOpen       = "open"
	StateClosed     = "closed"
)

// Request types

type CreateElectionRequest struct {
	Title            string   `json:"title"`
	Candidates       []string `json:"candidates"`
	NumGrades        int      `json:"num_grades"`
	StartAt          int64    `json:"start_at"`
	FinishAt         int64    `json:"finish_at"`
	OnInvitationOnly bool     `json:"on_invitation_only"`
	RestrictResults  bool     `json:"restrict_results"`
	ElectorEmails    []string `json:"elector_emails,omitempty"`
}

type SubmitVoteRequest struct {
	Grades []int  `json:"grades"`
	Token  string `json:"token,omitempty"`
}

// Response types

type CreateElectionResponse struct {
	Election   Election `json:"election"`
	NumInvites int      `json:"num_invites"`
}

type SubmitVoteResponse struct {
	VoteID string `json:"vote_id"`
}

type CandidateResult struct {
	Name          string `json:"name"`
	Index         int    `json:"index"`
	MeritProfile  []int  `json:"merit_profile"`
	MajorityGrade int    `json:"majority_grade"`
}

type ResultsResponse struct {
	ElectionID string            `json:"election_id"`
	VoteCount  int               `json:"vote_count"`
	Candidates []CandidateResult `json:"candidates"`
}

// Domain types

type Election struct {
	ID               string   `json:"id"`
	Ref              string   `json:"ref"`
	Title            string   `json:"title"`
	Candidates       []string `json:"candidates"`
	NumGrades        int      `json:"num_grades"`
	StartAt          int64    `json:"start_at"`
	FinishAt         int64    `json:"finish_at"`
	OnInvitationOnly bool     `json:"on_invitation_only"`
	RestrictResults  bool     `json:"restrict_results"`
	CreatedAt        int64    `json:"created_at"`
}

// State returns the election's window state at the given instant. The state
// is a pure function of wall-clock time against the fixed start/finish
// boundaries; nothing is stored.
func (e *Election) State(now time.Time) string {
	ts := now.Unix()
	switch {
	case ts < e.StartAt:
		return StateNotStarted
	case ts < e.FinishAt:
		return StateOpen
	default:
		return StateClosed
	}
}

type Token struct {
	ID         string `json:"id"`
	ElectionID string `json:"election_id"`
	Email      string `json:"-"` // Never expose in JSON
	Used       bool   `json:"used"`
	CreatedAt  int64  `json:"created_at"`
}

type Vote struct {
	ID         string `json:"id"`
	ElectionID string `json:"election_id"`
	Grades     []int  `json:"grades"`
	CreatedAt  int64  `json:"created_at"`
}

// ValidateGrades checks a submitted grade vector against the election's
// candidate count and grade count. It must run, and be the last gate,
// before a vote is durably recorded.
func ValidateGrades(grades []int, numCandidates, numGrades int) error {
	if len(grades) != numCandidates {
		return ErrMalformedVote
	}
	for _, g := range grades {
		if g < 0 || g >= numGrades {
			return ErrMalformedVote
		}
	}
	return nil
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}
