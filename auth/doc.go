// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package auth generates the short human-readable election refs used as a
// second lookup key alongside the election ID.
package auth
