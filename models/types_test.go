// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"errors"
	"testing"
	"time"
)

func TestElectionState(t *testing.T) {
	election := Election{StartAt: 1000, FinishAt: 2000}

	tests := []struct {
		name string
		now  int64
		want string
	}{
		{"before start", 999, StateNotStarted},
		{"at start", 1000, StateOpen},
		{"mid window", 1500, StateOpen},
		{"just before finish", 1999, StateOpen},
		{"at finish", 2000, StateClosed},
		{"after finish", 3000, StateClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := election.State(time.Unix(tt.now, 0))
			if got != tt.want {
				t.Errorf("State(%d) = %s, want %s", tt.now, got, tt.want)
			}
		})
	}
}

func TestValidateGrades(t *testing.T) {
	tests := []struct {
		name   string
		grades []int
		ok     bool
	}{
		{"valid", []int{0, 2, 1}, true},
		{"all lowest", []int{0, 0, 0}, true},
		{"all highest", []int{2, 2, 2}, true},
		{"too short", []int{0, 1}, false},
		{"too long", []int{0, 1, 2, 0}, false},
		{"grade out of range", []int{0, 3, 1}, false},
		{"negative grade", []int{0, -1, 1}, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateGrades(tt.grades, 3, 3)
			if tt.ok && err != nil {
				t.Errorf("Expected valid, got %v", err)
			}
			if !tt.ok && !errors.Is(err, ErrMalformedVote) {
				t.Errorf("Expected malformed-vote error, got %v", err)
			}
		})
	}
}

func TestAPIErrorMessages(t *testing.T) {
	// Codes and messages are part of the public API; clients match on them.
	if got := ErrUnknownElection.Error(); got != "E1: Unknown election" {
		t.Errorf("Unexpected error string %q", got)
	}
	if got := ErrTokenUsed.Error(); got != "E8: Token already used" {
		t.Errorf("Unexpected error string %q", got)
	}
}
