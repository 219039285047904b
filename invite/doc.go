// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package invite issues invitation tokens and publishes invitation events.

# Tokens

Each invited elector gets a single-use token bound to one election:

	token := invite.NewToken(electionID, email)

Tokens are random UUIDs stored server-side; the email is kept only so a
notifier can deliver the invitation, and is never exposed through the API.

# Notifiers

Creating an invitation-only election produces one InvitationCreated event per
elector. The Notifier interface decouples the server from delivery:

	type Notifier interface {
		InvitationCreated(election *models.Election, email, tokenID string)
	}

LogNotifier is the default implementation and logs the vote and result URLs
an email sender would need. A real deployment swaps in a mail queue behind
the same interface.
*/
package invite
