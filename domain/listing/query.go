package listing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type SortOrder string

const (
	SortNone      SortOrder = ""
	SortLowToHigh SortOrder = "lowToHigh"
	SortHighToLow SortOrder = "highToLow"
)

func (s SortOrder) IsValid() bool {
	switch s {
	case SortNone, SortLowToHigh, SortHighToLow:
		return true
	}
	return false
}

// Query narrows a catalog, empty fields match everything
type Query struct {
	Search      string      `query:"search"`
	Category    string      `query:"category"`
	ListingType ListingType `query:"listingType"`
	Sort        SortOrder   `query:"sort"`
}

var Categories = []string{
	"Digital Art",
	"Gaming Assets",
	"Music & Audio",
	"Video & Animation",
	"Sports & Collectibles",
	"Virtual Real Estate",
	"Domain Names",
	"Utility & Memberships",
	"Photography",
	"Fashion & Wearables",
}

// MaxCategoryLength bounds the free text category a minter may pick
const MaxCategoryLength = 64

// IsValidCategory accepts any short single line label. Categories are suggestions,
// minters may use their own.
func IsValidCategory(category string) bool {
	category = strings.TrimSpace(category)
	if len(category) == 0 || utf8.RuneCountInString(category) > MaxCategoryLength {
		return false
	}
	for _, r := range category {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
