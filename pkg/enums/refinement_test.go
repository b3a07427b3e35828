package enums

import "testing"

func TestBudgetTierStepDown(t *testing.T) {
	cases := []struct {
		in   BudgetTier
		want BudgetTier
	}{
		{BudgetTierFour, BudgetTierThree},
		{BudgetTierThree, BudgetTierTwo},
		{BudgetTierTwo, BudgetTierOne},
		{BudgetTierOne, BudgetTierOne},
		{BudgetTier("luxury"), BudgetTier("luxury")},
	}
	for _, tc := range cases {
		if got := tc.in.StepDown(); got != tc.want {
			t.Errorf("StepDown(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestBudgetTierFloor(t *testing.T) {
	tier := BudgetTierOne
	for i := 0; i < 3; i++ {
		tier = tier.StepDown()
	}
	if tier != BudgetTierOne {
		t.Errorf("repeated StepDown from floor = %q", tier)
	}
}

func TestColorMoodRing(t *testing.T) {
	mood := ColorMoodMixed
	want := []ColorMood{ColorMoodNeutral, ColorMoodBold, ColorMoodPastel, ColorMoodMixed}
	for _, expected := range want {
		mood = mood.Next()
		if mood != expected {
			t.Fatalf("ring advanced to %q, want %q", mood, expected)
		}
	}
}

func TestColorMoodNextUnknown(t *testing.T) {
	if got := ColorMood("chartreuse").Next(); got != ColorMoodMixed {
		t.Errorf("unknown mood advanced to %q, want %q", got, ColorMoodMixed)
	}
}

func TestParseRefinement(t *testing.T) {
	for _, value := range []string{"more-casual", "different-colors", "lower-prices", "more-options"} {
		r, err := ParseRefinement(value)
		if err != nil {
			t.Fatalf("ParseRefinement(%q): %v", value, err)
		}
		if r.String() != value {
			t.Errorf("round trip %q -> %q", value, r)
		}
	}
	if _, err := ParseRefinement("fancier"); err == nil {
		t.Error("expected error for unknown refinement")
	}
}

func TestParseApparelCategory(t *testing.T) {
	c, err := ParseApparelCategory("denim")
	if err != nil {
		t.Fatalf("ParseApparelCategory: %v", err)
	}
	if !c.IsValid() {
		t.Errorf("%q should be valid", c)
	}
	if _, err := ParseApparelCategory("hat"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestCurrencyOrDefault(t *testing.T) {
	if got := CurrencyOrDefault(""); got != CurrencyUSD {
		t.Errorf("empty currency = %q", got)
	}
	if got := CurrencyOrDefault("EUR"); got != CurrencyEUR {
		t.Errorf("EUR = %q", got)
	}
}
