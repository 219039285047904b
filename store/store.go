// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/scrutinapp/scrutin/models"
)

// FindElection loads an election given its ID or its ref. Both unique
// indices are queried explicitly: more than one match on either signals a
// broken uniqueness invariant and fails as inconsistent instead of silently
// favoring one row.
func FindElection(db *sql.DB, idOrRef string) (*models.Election, error) {
	election, count, err := queryElections(db, "id", idOrRef)
	if err != nil {
		return nil, err
	}
	if count > 1 {
		return nil, fmt.Errorf("several elections share id %q: %w", idOrRef, models.ErrInconsistentDB)
	}
	if count == 1 {
		return election, nil
	}

	election, count, err = queryElections(db, "ref", idOrRef)
	if err != nil {
		return nil, err
	}
	if count > 1 {
		return nil, fmt.Errorf("several elections share ref %q: %w", idOrRef, models.ErrInconsistentDB)
	}
	if count == 1 {
		return election, nil
	}

	return nil, models.ErrUnknownElection
}

func queryElections(db *sql.DB, column, value string) (*models.Election, int, error) {
	rows, err := db.Query(`
		SELECT id, ref, title, candidates, num_grades, start_at, finish_at,
		       on_invitation_only, restrict_results, created_at
		FROM election WHERE `+column+` = $1
	`, value)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query elections by %s: %w", column, err)
	}
	defer rows.Close()

	var election *models.Election
	count := 0
	for rows.Next() {
		var e models.Election
		var candidatesJSON []byte
		if err := rows.Scan(
			&e.ID, &e.Ref, &e.Title, &candidatesJSON, &e.NumGrades,
			&e.StartAt, &e.FinishAt, &e.OnInvitationOnly, &e.RestrictResults,
			&e.CreatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan election: %w", err)
		}
		if err := json.Unmarshal(candidatesJSON, &e.Candidates); err != nil {
			return nil, 0, fmt.Errorf("failed to decode candidate list: %w", err)
		}
		election = &e
		count++
	}

	return election, count, rows.Err()
}

// InsertElection persists an election together with its invitation tokens in
// a single transaction, so a half-created election is never visible.
func InsertElection(db *sql.DB, e *models.Election, tokens []*models.Token) error {
	candidatesJSON, err := json.Marshal(e.Candidates)
	if err != nil {
		return fmt.Errorf("failed to encode candidate list: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO election (id, ref, title, candidates, num_grades, start_at,
		                      finish_at, on_invitation_only, restrict_results, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, e.ID, e.Ref, e.Title, candidatesJSON, e.NumGrades, e.StartAt,
		e.FinishAt, e.OnInvitationOnly, e.RestrictResults, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert election: %w", err)
	}

	for _, token := range tokens {
		_, err = tx.Exec(`
			INSERT INTO token (id, election_id, email, used, created_at)
			VALUES ($1, $2, $3, $4, $5)
		`, token.ID, token.ElectionID, token.Email, token.Used, token.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert token: %w", err)
		}
	}

	return tx.Commit()
}

// AppendVote records a vote for an open, non-invitation election. Votes are
// append-only and carry no voter identity.
func AppendVote(db *sql.DB, electionID string, grades []int) (string, error) {
	gradesJSON, err := json.Marshal(grades)
	if err != nil {
		return "", fmt.Errorf("failed to encode grades: %w", err)
	}

	voteID := uuid.NewString()
	_, err = db.Exec(`
		INSERT INTO vote (id, election_id, grades, created_at)
		VALUES ($1, $2, $3, $4)
	`, voteID, electionID, gradesJSON, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("failed to insert vote: %w", err)
	}

	return voteID, nil
}

// ListVotes returns every grade vector recorded for an election, in
// insertion order.
func ListVotes(db *sql.DB, electionID string) ([][]int, error) {
	rows, err := db.Query(`
		SELECT grades FROM vote WHERE election_id = $1 ORDER BY created_at, id
	`, electionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}
	defer rows.Close()

	var votes [][]int
	for rows.Next() {
		var gradesJSON []byte
		if err := rows.Scan(&gradesJSON); err != nil {
			return nil, fmt.Errorf("failed to scan vote: %w", err)
		}
		var grades []int
		if err := json.Unmarshal(gradesJSON, &grades); err != nil {
			return nil, fmt.Errorf("failed to decode grades: %w", err)
		}
		votes = append(votes, grades)
	}

	return votes, rows.Err()
}

// FindToken looks up an invitation token scoped to one election.
func FindToken(db *sql.DB, electionID, tokenID string) (*models.Token, error) {
	var token models.Token
	err := db.QueryRow(`
		SELECT id, election_id, email, used, created_at
		FROM token WHERE election_id = $1 AND id = $2
	`, electionID, tokenID).Scan(
		&token.ID, &token.ElectionID, &token.Email, &token.Used, &token.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrUnknownToken
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query token: %w", err)
	}

	return &token, nil
}

// MarkUsedAndAppendVote redeems an invitation token and records the vote it
// authorizes as a single atomic unit. The redemption is a conditional update
// on the unused flag, so of two concurrent requests presenting the same
// token exactly one wins; the loser sees the token as already used. If the
// transaction aborts, neither the flag nor the vote is visible.
func MarkUsedAndAppendVote(db *sql.DB, electionID, tokenID string, grades []int) (string, error) {
	gradesJSON, err := json.Marshal(grades)
	if err != nil {
		return "", fmt.Errorf("failed to encode grades: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
		UPDATE token SET used = TRUE
		WHERE election_id = $1 AND id = $2 AND used = FALSE
	`, electionID, tokenID)
	if err != nil {
		return "", fmt.Errorf("failed to mark token used: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return "", fmt.Errorf("failed to read rows affected: %w", err)
	}
	if affected == 0 {
		// Distinguish a missing token from a spent one.
		var used bool
		err := tx.QueryRow(`
			SELECT used FROM token WHERE election_id = $1 AND id = $2
		`, electionID, tokenID).Scan(&used)
		if err == sql.ErrNoRows {
			return "", models.ErrUnknownToken
		}
		if err != nil {
			return "", fmt.Errorf("failed to query token: %w", err)
		}
		return "", models.ErrTokenUsed
	}

	voteID := uuid.NewString()
	_, err = tx.Exec(`
		INSERT INTO vote (id, election_id, grades, created_at)
		VALUES ($1, $2, $3, $4)
	`, voteID, electionID, gradesJSON, time.Now().Unix())
	if err != nil {
		return "", fmt.Errorf("failed to insert vote: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit vote: %w", err)
	}

	return voteID, nil
}
