package usecase

import (
	"sort"
	"strings"

	"github.com/x-xyz/marketclient/domain/listing"
)

// FilterAndSort returns the listings matching q, ordered by q.Sort. The input is not modified.
func FilterAndSort(listings []listing.Listing, q listing.Query) []listing.Listing {
	search := strings.ToLower(strings.TrimSpace(q.Search))

	res := make([]listing.Listing, 0, len(listings))
	for _, l := range listings {
		if len(search) > 0 &&
			!strings.Contains(strings.ToLower(l.Name), search) &&
			!strings.Contains(strings.ToLower(l.Description), search) {
			continue
		}
		if len(q.Category) > 0 && l.Category != q.Category {
			continue
		}
		if len(q.ListingType) > 0 && l.ListingType != q.ListingType {
			continue
		}
		res = append(res, l)
	}

	switch q.Sort {
	case listing.SortLowToHigh:
		sort.SliceStable(res, func(i, j int) bool {
			return res[i].Price.LessThan(res[j].Price)
		})
	case listing.SortHighToLow:
		sort.SliceStable(res, func(i, j int) bool {
			return res[i].Price.GreaterThan(res[j].Price)
		})
	}
	return res
}
