// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"strings"
	"testing"
)

func TestGenerateRefDeterministic(t *testing.T) {
	ref1 := GenerateRef("election-1", "salt")
	ref2 := GenerateRef("election-1", "salt")

	if ref1 != ref2 {
		t.Errorf("Expected deterministic refs, got %s and %s", ref1, ref2)
	}
	if ref1 == "" {
		t.Error("Expected non-empty ref")
	}
}

func TestGenerateRefVariesWithInputs(t *testing.T) {
	base := GenerateRef("election-1", "salt")

	if GenerateRef("election-2", "salt") == base {
		t.Error("Different elections should get different refs")
	}
	if GenerateRef("election-1", "other-salt") == base {
		t.Error("Different salts should give different refs")
	}
}

func TestGenerateRefURLSafe(t *testing.T) {
	const alphanumeric = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

	ref := GenerateRef("election-1", "salt")
	for _, c := range ref {
		if !strings.ContainsRune(alphanumeric, c) {
			t.Errorf("Ref %q contains non-alphanumeric character %q", ref, c)
		}
	}
}
