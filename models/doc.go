// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package models defines the domain types, request/response types, the
// election window state machine, and the stable error taxonomy (E1..E10)
// shared across the server.
package models
