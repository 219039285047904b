// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package invite

import (
	"testing"
)

func TestNewToken(t *testing.T) {
	token := NewToken("election-1", "voter@example.org")

	if token.ID == "" {
		t.Error("Expected a token ID")
	}
	if token.ElectionID != "election-1" {
		t.Errorf("Expected election ID 'election-1', got '%s'", token.ElectionID)
	}
	if token.Email != "voter@example.org" {
		t.Errorf("Expected email 'voter@example.org', got '%s'", token.Email)
	}
	if token.Used {
		t.Error("New tokens must start unused")
	}
	if token.CreatedAt == 0 {
		t.Error("Expected a creation timestamp")
	}
}

func TestNewTokenUnique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token := NewToken("election-1", "voter@example.org")
		if seen[token.ID] {
			t.Fatalf("Duplicate token ID %s", token.ID)
		}
		seen[token.ID] = true
	}
}
