package enums

import "fmt"

// Refinement names a deterministic transformation applied to a style profile
// before a haul is re-planned.
type Refinement string

const (
	RefinementMoreCasual      Refinement = "more-casual"
	RefinementDifferentColors Refinement = "different-colors"
	RefinementLowerPrices     Refinement = "lower-prices"
	RefinementMoreOptions     Refinement = "more-options"
)

var validRefinements = []Refinement{
	RefinementMoreCasual,
	RefinementDifferentColors,
	RefinementLowerPrices,
	RefinementMoreOptions,
}

// String implements fmt.Stringer.
func (r Refinement) String() string {
	return string(r)
}

// IsValid reports whether the value is a known Refinement.
func (r Refinement) IsValid() bool {
	for _, candidate := range validRefinements {
		if candidate == r {
			return true
		}
	}
	return false
}

// ParseRefinement converts raw input into a Refinement.
func ParseRefinement(value string) (Refinement, error) {
	for _, candidate := range validRefinements {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid refinement %q", value)
}

// BudgetTier represents a price band on the quiz's four-step ladder.
type BudgetTier string

const (
	BudgetTierOne   BudgetTier = "$"
	BudgetTierTwo   BudgetTier = "$$"
	BudgetTierThree BudgetTier = "$$$"
	BudgetTierFour  BudgetTier = "$$$$"
)

// budgetLadder is ordered cheapest first; StepDown walks it toward index 0.
var budgetLadder = []BudgetTier{
	BudgetTierOne,
	BudgetTierTwo,
	BudgetTierThree,
	BudgetTierFour,
}

// String implements fmt.Stringer.
func (b BudgetTier) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BudgetTier.
func (b BudgetTier) IsValid() bool {
	for _, candidate := range budgetLadder {
		if candidate == b {
			return true
		}
	}
	return false
}

// StepDown returns the next cheaper tier. The cheapest tier is a floor and
// returns itself, as does any unrecognized value.
func (b BudgetTier) StepDown() BudgetTier {
	for i, candidate := range budgetLadder {
		if candidate == b {
			if i == 0 {
				return b
			}
			return budgetLadder[i-1]
		}
	}
	return b
}

// ColorMood represents the color-preference state cycled by the
// different-colors refinement.
type ColorMood string

const (
	ColorMoodMixed   ColorMood = "mixed"
	ColorMoodNeutral ColorMood = "neutral"
	ColorMoodBold    ColorMood = "bold"
	ColorMoodPastel  ColorMood = "pastel"
)

// colorRing is the fixed cycle order; Next wraps pastel back to mixed.
var colorRing = []ColorMood{
	ColorMoodMixed,
	ColorMoodNeutral,
	ColorMoodBold,
	ColorMoodPastel,
}

// String implements fmt.Stringer.
func (m ColorMood) String() string {
	return string(m)
}

// IsValid reports whether the value is a known ColorMood.
func (m ColorMood) IsValid() bool {
	for _, candidate := range colorRing {
		if candidate == m {
			return true
		}
	}
	return false
}

// Next returns the following mood on the ring. Unrecognized values restart
// the ring at mixed.
func (m ColorMood) Next() ColorMood {
	for i, candidate := range colorRing {
		if candidate == m {
			return colorRing[(i+1)%len(colorRing)]
		}
	}
	return ColorMoodMixed
}
