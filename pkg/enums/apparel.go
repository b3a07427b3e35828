package enums

import "fmt"

// ApparelCategory represents the canonical apparel categories used to tag outfit items.
type ApparelCategory string

const (
	ApparelCategoryTop         ApparelCategory = "top"
	ApparelCategoryBottom      ApparelCategory = "bottom"
	ApparelCategoryDress       ApparelCategory = "dress"
	ApparelCategoryOuterwear   ApparelCategory = "outerwear"
	ApparelCategoryBlazer      ApparelCategory = "blazer"
	ApparelCategoryShoes       ApparelCategory = "shoes"
	ApparelCategoryBag         ApparelCategory = "bag"
	ApparelCategoryJewelry     ApparelCategory = "jewelry"
	ApparelCategoryAccessories ApparelCategory = "accessories"
	ApparelCategoryDenim       ApparelCategory = "denim"
	ApparelCategoryOther       ApparelCategory = "other"
)

var validApparelCategories = []ApparelCategory{
	ApparelCategoryTop,
	ApparelCategoryBottom,
	ApparelCategoryDress,
	ApparelCategoryOuterwear,
	ApparelCategoryBlazer,
	ApparelCategoryShoes,
	ApparelCategoryBag,
	ApparelCategoryJewelry,
	ApparelCategoryAccessories,
	ApparelCategoryDenim,
	ApparelCategoryOther,
}

// String implements fmt.Stringer.
func (c ApparelCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ApparelCategory.
func (c ApparelCategory) IsValid() bool {
	for _, candidate := range validApparelCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseApparelCategory converts raw input into an ApparelCategory.
func ParseApparelCategory(value string) (ApparelCategory, error) {
	for _, candidate := range validApparelCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid apparel category %q", value)
}
