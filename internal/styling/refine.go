package styling

import (
	"strings"

	"github.com/stylehaulhq/stylehaul-backend/pkg/enums"
)

// ResolveLimits bounds how many products a generation pulls back.
type ResolveLimits struct {
	PerQuery    int
	MaxProducts int
}

// DefaultLimits returns the standard resolution caps.
func DefaultLimits() ResolveLimits {
	return ResolveLimits{PerQuery: 2, MaxProducts: 12}
}

// moreOptionsLimits widens both caps instead of mutating the profile.
func moreOptionsLimits() ResolveLimits {
	return ResolveLimits{PerQuery: 3, MaxProducts: 16}
}

// ApplyRefinement returns the profile and limits to plan with after a named
// refinement. Profile transformations are pure table lookups: casual
// prefixing, the color ring, and the budget ladder (floor at the cheapest
// tier). Unknown refinements leave everything unchanged.
func ApplyRefinement(profile StyleProfile, refinement enums.Refinement) (StyleProfile, ResolveLimits) {
	limits := DefaultLimits()

	switch refinement {
	case enums.RefinementMoreCasual:
		if !strings.Contains(strings.ToLower(profile.StyleVibe), "casual") {
			profile.StyleVibe = "casual " + profile.StyleVibe
		}

	case enums.RefinementDifferentColors:
		profile.Colors = profile.Colors.Next()

	case enums.RefinementLowerPrices:
		profile.Budget = profile.Budget.StepDown()

	case enums.RefinementMoreOptions:
		limits = moreOptionsLimits()
	}

	return profile, limits
}
