// Copyright (c) 2026 The Scrutin Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tally

import (
	"fmt"
	"sort"
)

// MeritProfile is a candidate's grade histogram: index g holds the number of
// voters who gave grade g. The full grade domain is always present, so a
// grade nobody used appears with count 0.
type MeritProfile []int

// VoteCount returns the total number of votes recorded in the profile.
func (p MeritProfile) VoteCount() int {
	n := 0
	for _, c := range p {
		n += c
	}
	return n
}

// MajorityValue is the comparable value that totally orders candidates:
// the majority (median) grade plus a tie-break score. Grade is -1 when the
// candidate received no votes at all; such candidates rank below everything.
type MajorityValue struct {
	Grade int
	Score float64
}

// Ranked pairs a candidate's original index with its majority value.
type Ranked struct {
	Candidate int
	Value     MajorityValue
}

// MeritProfiles aggregates raw per-voter grade vectors into one merit
// profile per candidate index. Each vote must have exactly numCandidates
// grades, each in [0, numGrades-1]; anything else means a vote slipped past
// submission validation and the whole tally is refused rather than silently
// miscounted.
func MeritProfiles(votes [][]int, numCandidates, numGrades int) ([]MeritProfile, error) {
	profiles := make([]MeritProfile, numCandidates)
	for i := range profiles {
		profiles[i] = make(MeritProfile, numGrades)
	}

	for _, vote := range votes {
		if len(vote) != numCandidates {
			return nil, fmt.Errorf("malformed vote: %d grades for %d candidates", len(vote), numCandidates)
		}
		for candidate, grade := range vote {
			if grade < 0 || grade >= numGrades {
				return nil, fmt.Errorf("malformed vote: grade %d outside [0, %d]", grade, numGrades-1)
			}
			profiles[candidate][grade]++
		}
	}

	return profiles, nil
}

// MajorityValueOf derives a candidate's majority value from its merit
// profile.
//
// The majority grade is the median of the grades, taking the lower of the
// two central order statistics when the vote count is even. The tie-break
// score is p - q, where p is the share of votes strictly above the majority
// grade and q the share strictly below; among candidates with the same
// majority grade, the one whose voters push harder upward wins.
func MajorityValueOf(p MeritProfile) MajorityValue {
	n := p.VoteCount()
	if n == 0 {
		return MajorityValue{Grade: -1}
	}

	// Lower median: the k-th smallest grade with k = ceil(n/2).
	k := (n + 1) / 2
	grade := 0
	cumulative := 0
	for g, count := range p {
		cumulative += count
		if cumulative >= k {
			grade = g
			break
		}
	}

	above := 0
	below := 0
	for g, count := range p {
		switch {
		case g > grade:
			above += count
		case g < grade:
			below += count
		}
	}

	return MajorityValue{
		Grade: grade,
		Score: float64(above-below) / float64(n),
	}
}

// Compare orders majority values: positive when v ranks above o, negative
// when below, zero when fully tied. Higher majority grade wins; among equal
// grades the higher tie-break score wins.
func (v MajorityValue) Compare(o MajorityValue) int {
	if v.Grade != o.Grade {
		if v.Grade > o.Grade {
			return 1
		}
		return -1
	}
	if v.Score != o.Score {
		if v.Score > o.Score {
			return 1
		}
		return -1
	}
	return 0
}

// Rank totally orders candidates by majority value, best first. Fully tied
// candidates keep ascending original-index order, so identical input always
// yields an identical ranking. Pure function: no I/O, no mutation of its
// input.
func Rank(values []MajorityValue) []Ranked {
	ranked := make([]Ranked, len(values))
	for i, v := range values {
		ranked[i] = Ranked{Candidate: i, Value: v}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value.Compare(ranked[j].Value) > 0
	})

	return ranked
}
