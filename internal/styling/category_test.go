package styling

import (
	"testing"

	"github.com/stylehaulhq/stylehaul-backend/pkg/enums"
)

func TestInferCategory(t *testing.T) {
	cases := []struct {
		query   string
		product string
		want    enums.ApparelCategory
	}{
		{"women's leather boots", "Ankle Boot", enums.ApparelCategoryShoes},
		{"structured handbag", "Tote", enums.ApparelCategoryAccessories},
		{"silk blouse", "Blouse", enums.ApparelCategoryTop},
		{"wide leg trousers", "Trouser", enums.ApparelCategoryBottom},
		{"wool coat", "Overcoat", enums.ApparelCategoryOuterwear},
		{"gold hoop earrings", "Hoops", enums.ApparelCategoryAccessories},
		{"mystery garment", "Thing", enums.ApparelCategoryOther},
		{"", "", enums.ApparelCategoryOther},
	}

	for _, tc := range cases {
		if got := InferCategory(tc.query, tc.product); got != tc.want {
			t.Errorf("InferCategory(%q, %q) = %q, want %q", tc.query, tc.product, got, tc.want)
		}
	}
}

func TestInferCategoryPickupFromProductName(t *testing.T) {
	if got := InferCategory("something neutral", "Suede Sandal"); got != enums.ApparelCategoryShoes {
		t.Errorf("got %q, want shoes", got)
	}
}

func TestInferCategoryRulePriority(t *testing.T) {
	// outerwear is checked before shoes, so a mixed query resolves to outerwear
	if got := InferCategory("jacket with matching shoes", ""); got != enums.ApparelCategoryOuterwear {
		t.Errorf("got %q, want outerwear", got)
	}
}
