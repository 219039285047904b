// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package tally implements the majority judgment ranking core.

The pipeline runs in three pure steps:

	profiles, _ := tally.MeritProfiles(votes, numCandidates, numGrades)
	values[i] = tally.MajorityValueOf(profiles[i])
	ranking := tally.Rank(values)

A merit profile is a candidate's histogram of received grades over the full
grade domain. Its majority value is the median grade (lower central order
statistic for even vote counts) together with a tie-break score: the share of
voters grading strictly above the median minus the share grading strictly
below. Rank orders candidates by grade, then score, then original index.

Nothing here touches storage or the clock, so identical input always
produces an identical ranking and the package is safe under arbitrary
request concurrency.
*/
package tally
