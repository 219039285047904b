// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3421)
  - DatabaseURL: Database connection string (required)
  - DatabaseType: "sqlite" or "postgres" (default: sqlite)
  - RefSalt: Secret for public election ref HMAC (required)
  - SiteURL: Public URL used in invitation links (default: derived from port)
  - MaxCandidates: Upper bound on candidates per election (default: 1000)
  - MaxGrades: Upper bound on grade levels per election (default: 100)

# CLI Flags

	-p              Server port
	-d              Database URL
	-t              Database type
	-site-url       Public site URL
	-ref-salt       Election ref salt
	-max-candidates Maximum candidates per election
	-max-grades     Maximum grade levels per election

# Environment Variables

Flags fall back to environment variables:

	PORT           → -p
	DATABASE_URL   → -d
	DATABASE_TYPE  → -t
	SITE_URL       → -site-url
	REF_SALT       → -ref-salt
	MAX_CANDIDATES → -max-candidates
	MAX_GRADES     → -max-grades

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing:

  - DATABASE_URL must be provided
  - REF_SALT must be provided

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("sqlite", cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg, notifier)
*/
package cliparse
