// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the persistence layer: elections, invitation tokens, and
votes over database/sql (postgres or sqlite).

Elections are looked up by ID or ref through one function that checks both
unique indices and fails on multiplicity instead of silently picking a row.
Votes are append-only and anonymous. Token redemption and the vote it
authorizes commit as one transaction; the token's used flag is flipped with
a conditional UPDATE so concurrent redemptions of the same token cannot both
succeed.
*/
package store
