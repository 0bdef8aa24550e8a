package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
)

func mkListing(id domain.TokenId, name, desc, category string, typ listing.ListingType, price string) listing.Listing {
	return listing.Listing{
		Id:          id,
		Name:        name,
		Description: desc,
		Category:    category,
		ListingType: typ,
		Price:       decimal.RequireFromString(price),
	}
}

func ids(ls []listing.Listing) []domain.TokenId {
	res := []domain.TokenId{}
	for _, l := range ls {
		res = append(res, l.Id)
	}
	return res
}

var fixtures = []listing.Listing{
	mkListing(1, "Sunset", "orange sky over the sea", "Digital Art", listing.ListingTypeFixedPrice, "0.5"),
	mkListing(2, "Dragon Sword", "legendary blade", "Gaming Assets", listing.ListingTypeAuction, "1.2"),
	mkListing(3, "Beach", "a SUNSET on the beach", "Photography", listing.ListingTypeFixedPrice, "0.5"),
	mkListing(4, "Track 01", "lofi beat", "Music & Audio", listing.ListingTypeAuction, "0.05"),
	mkListing(5, "Skyline", "city at night", "Digital Art", listing.ListingTypeAuction, "2"),
}

func TestFilterAndSort(t *testing.T) {
	tests := []struct {
		name  string
		query listing.Query
		want  []domain.TokenId
	}{
		{
			name:  "empty query keeps order",
			query: listing.Query{},
			want:  []domain.TokenId{1, 2, 3, 4, 5},
		},
		{
			name:  "search matches name or description case-insensitively",
			query: listing.Query{Search: "  sunset "},
			want:  []domain.TokenId{1, 3},
		},
		{
			name:  "category is exact",
			query: listing.Query{Category: "Digital Art"},
			want:  []domain.TokenId{1, 5},
		},
		{
			name:  "category does not match by case",
			query: listing.Query{Category: "digital art"},
			want:  []domain.TokenId{},
		},
		{
			name:  "listing type",
			query: listing.Query{ListingType: listing.ListingTypeAuction},
			want:  []domain.TokenId{2, 4, 5},
		},
		{
			name:  "low to high is stable for equal prices",
			query: listing.Query{Sort: listing.SortLowToHigh},
			want:  []domain.TokenId{4, 1, 3, 2, 5},
		},
		{
			name:  "high to low is stable for equal prices",
			query: listing.Query{Sort: listing.SortHighToLow},
			want:  []domain.TokenId{5, 2, 1, 3, 4},
		},
		{
			name:  "combined",
			query: listing.Query{Category: "Digital Art", ListingType: listing.ListingTypeAuction, Sort: listing.SortHighToLow},
			want:  []domain.TokenId{5},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			req.Equal(tt.want, ids(FilterAndSort(fixtures, tt.query)))
		})
	}
}

func TestFilterAndSortIsIdempotent(t *testing.T) {
	req := require.New(t)
	for _, order := range []listing.SortOrder{listing.SortLowToHigh, listing.SortHighToLow} {
		q := listing.Query{Sort: order}
		once := FilterAndSort(fixtures, q)
		twice := FilterAndSort(once, q)
		req.Equal(once, twice)
	}
}

func TestFilterAndSortDoesNotMutateInput(t *testing.T) {
	req := require.New(t)
	input := make([]listing.Listing, len(fixtures))
	copy(input, fixtures)

	FilterAndSort(input, listing.Query{Sort: listing.SortHighToLow})
	req.Equal(fixtures, input)
	req.Empty(FilterAndSort(nil, listing.Query{Search: "x"}))
}
