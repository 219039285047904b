// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package middleware provides request logging, CORS, JSON body/response
// helpers, and the typed-error writer that maps models.APIError values to
// their stable code and HTTP status.
package middleware
