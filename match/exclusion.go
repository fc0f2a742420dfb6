package match

import (
	"github.com/lox/bridgedeal/deck"
	"github.com/lox/bridgedeal/profile"
)

// ShapeDigits renders per-suit lengths for exclusion-pattern comparison.
// Lengths 0-9 map to their own digit; nothing in a 13-card hand needs two
// digits at once here since the only suit that can reach double digits is
// a single suit holding up to all 13 cards, so lengths are compared
// digit-by-digit against the int array directly (see ShapeMatchesPattern)
// rather than via string formatting, which would be ambiguous for a
// 2-character length like "13".
type ShapeDigits [4]int

// ShapeMatchesPattern reports whether lengths matches a 4-character
// exclusion pattern: digits '0'-'9' require an exact length, and 'x'
// matches any length 0-9 at that position. No other wildcard form exists;
// a suit holding 10+ cards never matches an explicit digit or 'x', which
// is the same gap the reference implementation's single-digit shape
// string has (see the suit-length-vector note on ShapeDigits above).
func ShapeMatchesPattern(lengths ShapeDigits, pattern string) bool {
	if len(pattern) != 4 {
		return false
	}
	for i, c := range pattern {
		switch {
		case c == 'x':
			if lengths[i] < 0 || lengths[i] > 9 {
				return false
			}
		case c >= '0' && c <= '9':
			if lengths[i] != int(c-'0') {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// ClauseHolds reports whether an exclusion clause holds against lengths:
// among the clause's suit group, exactly Count suits have length LengthEq.
func ClauseHolds(lengths ShapeDigits, clause profile.ExclusionClause) bool {
	suits := clause.Group.Suits()
	if suits == nil {
		return false
	}
	got := 0
	for _, s := range suits {
		if lengths[int(s)] == clause.LengthEq {
			got++
		}
	}
	return got == clause.Count
}

// IsExcluded reports whether the hand described by analysis is excluded for
// (seat, subprofileIndex1Based) by any of profile's subprofile exclusions.
func IsExcluded(excls []profile.SubprofileExclusion, seat deck.Seat, subprofileIndex1Based int, analysis SuitAnalysis) bool {
	lengths := ShapeDigits(analysis.ShapeLengths())

	for _, exc := range excls {
		if exc.Seat != seat {
			continue
		}
		if exc.SubprofileIndex != subprofileIndex1Based {
			continue
		}

		for _, pat := range exc.ShapePatterns {
			if ShapeMatchesPattern(lengths, pat) {
				return true
			}
		}

		if len(exc.Clauses) > 0 {
			allHold := true
			for _, cl := range exc.Clauses {
				if !ClauseHolds(lengths, cl) {
					allHold = false
					break
				}
			}
			if allHold {
				return true
			}
		}
	}
	return false
}
