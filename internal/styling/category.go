package styling

import (
	"strings"

	"github.com/stylehaulhq/stylehaul-backend/pkg/enums"
)

// categoryRules are checked in order; the first matching keyword wins, so a
// query matching both "jacket" and "shoe" resolves to outerwear.
var categoryRules = []struct {
	category enums.ApparelCategory
	keywords []string
}{
	{enums.ApparelCategoryTop, []string{"top", "blouse", "shirt"}},
	{enums.ApparelCategoryBottom, []string{"bottom", "trouser", "pant"}},
	{enums.ApparelCategoryOuterwear, []string{"jacket", "coat", "blazer"}},
	{enums.ApparelCategoryShoes, []string{"shoe", "boot", "sandal"}},
	{enums.ApparelCategoryAccessories, []string{"bag", "accessory", "jewelry", "ring", "earring"}},
}

// InferCategory maps a free-text query and product name to an apparel
// category via case-insensitive substring matching. Deterministic, no
// external calls.
func InferCategory(query, productName string) enums.ApparelCategory {
	haystack := strings.ToLower(query + " " + productName)
	for _, rule := range categoryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(haystack, keyword) {
				return rule.category
			}
		}
	}
	return enums.ApparelCategoryOther
}
