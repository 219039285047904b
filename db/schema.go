// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// Portable across postgres and sqlite: TEXT/BIGINT/BOOLEAN only, timestamps
// written explicitly by the application as epoch seconds.
const schema = `
-- Elections. Candidate list and grade scale are fixed at creation.
CREATE TABLE IF NOT EXISTS election (
    id TEXT PRIMARY KEY,
    ref TEXT NOT NULL UNIQUE,
    title TEXT NOT NULL,
    candidates TEXT NOT NULL,
    num_grades INTEGER NOT NULL,
    start_at BIGINT NOT NULL,
    finish_at BIGINT NOT NULL,
    on_invitation_only BOOLEAN NOT NULL DEFAULT FALSE,
    restrict_results BOOLEAN NOT NULL DEFAULT FALSE,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_election_ref ON election(ref);

-- Invitation tokens. used flips false -> true exactly once, atomically with
-- the vote the token authorizes.
CREATE TABLE IF NOT EXISTS token (
    id TEXT PRIMARY KEY,
    election_id TEXT NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    email TEXT NOT NULL,
    used BOOLEAN NOT NULL DEFAULT FALSE,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_token_election_id ON token(election_id);

-- Votes. Append-only, anonymous: a grade vector and nothing else.
CREATE TABLE IF NOT EXISTS vote (
    id TEXT PRIMARY KEY,
    election_id TEXT NOT NULL REFERENCES election(id) ON DELETE CASCADE,
    grades TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_vote_election_id ON vote(election_id);
`
