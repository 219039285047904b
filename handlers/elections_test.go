// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/scrutinapp/scrutin/models"
	"github.com/scrutinapp/scrutin/testutil"
)

// recordingNotifier captures invitation events for assertions.
type recordingNotifier struct {
	mu     sync.Mutex
	emails []string
}

func (n *recordingNotifier) InvitationCreated(election *models.Election, email, tokenID string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.emails = append(n.emails, email)
}

func TestCreateElection(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	notifier := &recordingNotifier{}
	handler := NewElectionHandler(db, cfg, notifier)

	now := time.Now().Unix()
	req := testutil.MakeRequest("POST", "/elections", models.CreateElectionRequest{
		Title:      "Best lunch spot",
		Candidates: []string{"North Cafe", "South Deli"},
		NumGrades:  5,
		StartAt:    now - 10,
		FinishAt:   now + 3600,
	}, nil)
	w := httptest.NewRecorder()

	handler.CreateElection(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateElectionResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Election.ID == "" {
		t.Error("Expected a generated election ID")
	}
	if resp.Election.Ref == "" {
		t.Error("Expected a generated election ref")
	}
	if resp.NumInvites != 0 {
		t.Errorf("Expected 0 invites, got %d", resp.NumInvites)
	}

	// The created election is immediately retrievable by ref.
	getReq := testutil.MakeRequest("GET", "/elections/"+resp.Election.Ref, nil, nil)
	getReq.SetPathValue("id", resp.Election.Ref)
	getW := httptest.NewRecorder()
	handler.GetElection(getW, getReq)
	testutil.AssertStatus(t, getW, http.StatusOK)
}

func TestCreateElectionWithInvitations(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	notifier := &recordingNotifier{}
	handler := NewElectionHandler(db, cfg, notifier)

	now := time.Now().Unix()
	req := testutil.MakeRequest("POST", "/elections", models.CreateElectionRequest{
		Title:            "Committee chair",
		Candidates:       []string{"Ada", "Grace", "Edsger"},
		NumGrades:        7,
		StartAt:          now,
		FinishAt:         now + 86400,
		OnInvitationOnly: true,
		ElectorEmails:    []string{"a@example.org", "b@example.org", "c@example.org"},
	}, nil)
	w := httptest.NewRecorder()

	handler.CreateElection(w, req)
	testutil.AssertStatus(t, w, http.StatusCreated)

	var resp models.CreateElectionResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.NumInvites != 3 {
		t.Errorf("Expected 3 invites, got %d", resp.NumInvites)
	}
	if len(notifier.emails) != 3 {
		t.Errorf("Expected 3 invitation events, got %d", len(notifier.emails))
	}

	// One unused token per invited email.
	var tokenCount int
	err := db.QueryRow(`SELECT COUNT(*) FROM token WHERE election_id = $1 AND used = FALSE`,
		resp.Election.ID).Scan(&tokenCount)
	if err != nil {
		t.Fatalf("Failed to count tokens: %v", err)
	}
	if tokenCount != 3 {
		t.Errorf("Expected 3 unused tokens, got %d", tokenCount)
	}
}

func TestCreateElectionBadParams(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewElectionHandler(db, cfg, &recordingNotifier{})
	now := time.Now().Unix()

	tests := []struct {
		name string
		req  models.CreateElectionRequest
	}{
		{"no candidates", models.CreateElectionRequest{
			Title: "x", NumGrades: 3, StartAt: now, FinishAt: now + 60}},
		{"empty candidate name", models.CreateElectionRequest{
			Title: "x", Candidates: []string{"A", ""}, NumGrades: 3, StartAt: now, FinishAt: now + 60}},
		{"one grade", models.CreateElectionRequest{
			Title: "x", Candidates: []string{"A", "B"}, NumGrades: 1, StartAt: now, FinishAt: now + 60}},
		{"too many grades", models.CreateElectionRequest{
			Title: "x", Candidates: []string{"A", "B"}, NumGrades: 101, StartAt: now, FinishAt: now + 60}},
		{"window inverted", models.CreateElectionRequest{
			Title: "x", Candidates: []string{"A", "B"}, NumGrades: 3, StartAt: now + 60, FinishAt: now}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/elections", tt.req, nil)
			w := httptest.NewRecorder()
			handler.CreateElection(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
			testutil.AssertErrorCode(t, w, "E9")
		})
	}
}

func TestGetElectionNotStarted(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewElectionHandler(db, cfg, &recordingNotifier{})

	election := testutil.CreateTestElection(t, db, models.StateNotStarted, testutil.ElectionOpts{})

	req := testutil.MakeRequest("GET", "/elections/"+election.ID, nil, nil)
	req.SetPathValue("id", election.ID)
	w := httptest.NewRecorder()

	handler.GetElection(w, req)
	testutil.AssertStatus(t, w, http.StatusUnauthorized)
	testutil.AssertErrorCode(t, w, "E4")
}

func TestGetElectionClosedStillVisible(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewElectionHandler(db, cfg, &recordingNotifier{})

	election := testutil.CreateTestElection(t, db, models.StateClosed, testutil.ElectionOpts{})

	req := testutil.MakeRequest("GET", "/elections/"+election.ID, nil, nil)
	req.SetPathValue("id", election.ID)
	w := httptest.NewRecorder()

	handler.GetElection(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
}

func TestGetElectionUnknown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	handler := NewElectionHandler(db, cfg, &recordingNotifier{})

	req := testutil.MakeRequest("GET", "/elections/unknown", nil, nil)
	req.SetPathValue("id", "unknown")
	w := httptest.NewRecorder()

	handler.GetElection(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
	testutil.AssertErrorCode(t, w, "E1")
}
