// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package db creates the database schema. The statements are portable
// between postgres and sqlite.
package db
