// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Scrutin API server.

Scrutin runs majority judgment elections: voters grade every candidate on a
discrete scale, and candidates are ranked by comparing their grade
distributions (median grade plus tie-break) instead of summing scores.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... REF_SALT=... go run main.go

Or with flags:

	go run main.go -p 3421 -d "file:scrutin.db" -t sqlite -ref-salt dev

A .env file in the working directory is loaded automatically.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string or sqlite file
  - REF_SALT (-ref-salt): Secret for election ref generation

Optional settings:

  - PORT (-p): Server port (default: 3421)
  - DATABASE_TYPE (-t): "postgres" or "sqlite" (default: sqlite)
  - SITE_URL (-site-url): Public URL used in invitation links
  - MAX_CANDIDATES, MAX_GRADES: Election size limits (1000 / 100)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (elections, voting, results)
  - router: Route definitions using Go 1.22+ routing
  - tally: Pure majority-judgment computation
  - store: Election/token/vote persistence
  - invite: Invitation token events
  - middleware: CORS, logging, JSON and error helpers
  - models: Domain types and the error taxonomy
  - auth: Election ref generation
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
