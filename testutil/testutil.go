// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/scrutinapp/scrutin/cliparse"
	"github.com/scrutinapp/scrutin/db"
	"github.com/scrutinapp/scrutin/models"
)

// SetupTestDB creates a fresh in-memory sqlite database with the full
// schema. Each call gets its own database; a single pooled connection keeps
// transactions fully serialized, which is also what production postgres
// gives the token-redemption path.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	conn.SetMaxOpenConns(1)

	if err := db.CreateSchema(conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:          3421,
		DatabaseURL:   ":memory:",
		DatabaseType:  "sqlite",
		RefSalt:       "test-ref-salt",
		SiteURL:       "http://localhost:3421",
		MaxCandidates: 1000,
		MaxGrades:     100,
	}
}

// ElectionOpts tweaks the fixture election; zero value gives a plain
// three-candidate, three-grade election.
type ElectionOpts struct {
	Candidates       []string
	NumGrades        int
	OnInvitationOnly bool
	RestrictResults  bool
}

// CreateTestElection inserts an election whose voting window matches the
// requested state ("not_started", "open", or "closed") and returns it.
func CreateTestElection(t *testing.T, conn *sql.DB, state string, opts ElectionOpts) *models.Election {
	t.Helper()

	if opts.Candidates == nil {
		opts.Candidates = []string{"Candidate A", "Candidate B", "Candidate C"}
	}
	if opts.NumGrades == 0 {
		opts.NumGrades = 3
	}

	now := time.Now().Unix()
	var startAt, finishAt int64
	switch state {
	case models.StateNotStarted:
		startAt, finishAt = now+3600, now+7200
	case models.StateOpen:
		startAt, finishAt = now-3600, now+3600
	case models.StateClosed:
		startAt, finishAt = now-7200, now-3600
	default:
		t.Fatalf("unknown election state %q", state)
	}

	election := &models.Election{
		ID:               uuid.NewString(),
		Title:            "Test Election",
		Candidates:       opts.Candidates,
		NumGrades:        opts.NumGrades,
		StartAt:          startAt,
		FinishAt:         finishAt,
		OnInvitationOnly: opts.OnInvitationOnly,
		RestrictResults:  opts.RestrictResults,
		CreatedAt:        now,
	}
	election.Ref = "ref-" + election.ID[:8]

	candidatesJSON, _ := json.Marshal(election.Candidates)
	_, err := conn.Exec(`
		INSERT INTO election (id, ref, title, candidates, num_grades, start_at,
		                      finish_at, on_invitation_only, restrict_results, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, election.ID, election.Ref, election.Title, candidatesJSON, election.NumGrades,
		election.StartAt, election.FinishAt, election.OnInvitationOnly,
		election.RestrictResults, election.CreatedAt)
	if err != nil {
		t.Fatalf("Failed to create test election: %v", err)
	}

	return election
}

// CreateTestToken inserts an unused invitation token and returns its ID.
func CreateTestToken(t *testing.T, conn *sql.DB, electionID, email string) string {
	t.Helper()

	tokenID := uuid.NewString()
	_, err := conn.Exec(`
		INSERT INTO token (id, election_id, email, used, created_at)
		VALUES ($1, $2, $3, FALSE, $4)
	`, tokenID, electionID, email, time.Now().Unix())
	if err != nil {
		t.Fatalf("Failed to create test token: %v", err)
	}

	return tokenID
}

// SubmitTestVote inserts a vote directly and returns its ID.
func SubmitTestVote(t *testing.T, conn *sql.DB, electionID string, grades []int) string {
	t.Helper()

	voteID := uuid.NewString()
	gradesJSON, _ := json.Marshal(grades)
	_, err := conn.Exec(`
		INSERT INTO vote (id, election_id, grades, created_at)
		VALUES ($1, $2, $3, $4)
	`, voteID, electionID, gradesJSON, time.Now().Unix())
	if err != nil {
		t.Fatalf("Failed to create test vote: %v", err)
	}

	return voteID
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}

// AssertErrorCode checks that the response carries the given stable error code
func AssertErrorCode(t *testing.T, w *httptest.ResponseRecorder, code string) {
	t.Helper()
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}
	if resp.Code != code {
		t.Errorf("Expected error code %s, got %s. Body: %s", code, resp.Code, w.Body.String())
	}
}
