// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package invite

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/scrutinapp/scrutin/models"
)

// Notifier receives "invitation created" events. Delivery (templated email,
// localization) is entirely external to this server; implementations only
// need the addresses and URLs carried here.
type Notifier interface {
	InvitationCreated(election *models.Election, email, tokenID string)
}

// NewToken builds an unused invitation token for one invited email.
func NewToken(electionID, email string) *models.Token {
	return &models.Token{
		ID:         uuid.NewString(),
		ElectionID: electionID,
		Email:      email,
		Used:       false,
		CreatedAt:  time.Now().Unix(),
	}
}

// LogNotifier is the default Notifier: it logs each invitation event with
// the URLs an email sender would need. Useful in development and as the
// integration point for a real mail queue.
type LogNotifier struct {
	SiteURL string
}

func (n *LogNotifier) InvitationCreated(election *models.Election, email, tokenID string) {
	slog.Info("invitation created",
		"election_id", election.ID,
		"title", election.Title,
		"email", email,
		"invitation_url", fmt.Sprintf("%s/vote/%s?token=%s", n.SiteURL, election.ID, tokenID),
		"result_url", fmt.Sprintf("%s/result/%s", n.SiteURL, election.ID),
		"closes", humanize.Time(time.Unix(election.FinishAt, 0)),
	)
}
