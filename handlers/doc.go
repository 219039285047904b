// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Scrutin API.

# Handler Types

Each handler is a struct with database and config dependencies:

  - ElectionHandler: Election creation and details (holds the invitation Notifier)
  - VotingHandler: Vote submission
  - ResultsHandler: Majority-judgment results

Handlers are created via constructor functions that accept *sql.DB and Config:

	votingHandler := handlers.NewVotingHandler(db, cfg)

# Election Lifecycle

An election's voting window is fixed at creation; its state is derived from
the clock, never stored:

	POST /elections               → CreateElection (tokens + invitations)
	GET  /elections/{id}          → GetElection (hidden until start)
	POST /elections/{id}/votes    → SubmitVote (open window only)
	GET  /elections/{id}/results  → GetResults (sealed while restricted)

The {id} path value accepts the election's ID or its short ref.

# Voting Flow

A vote request passes the window guard, then the invitation token gate, then
grade validation, then storage. On invitation-only elections the token is
redeemed atomically with the vote insert (see store.MarkUsedAndAppendVote).

# Error Codes

Every expected failure carries a stable code (E1..E10) defined in models;
see models/errors.go for the full table.
*/
package handlers
