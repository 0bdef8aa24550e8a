package listing

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/x-xyz/marketclient/domain"
)

// Status mirrors the on-chain listing status
type Status uint8

const (
	StatusNotListed  Status = 0
	StatusFixedPrice Status = 1
	StatusAuction    Status = 2
)

func (s Status) IsListed() bool {
	return s == StatusFixedPrice || s == StatusAuction
}

func (s Status) ListingType() ListingType {
	switch s {
	case StatusFixedPrice:
		return ListingTypeFixedPrice
	case StatusAuction:
		return ListingTypeAuction
	default:
		return ListingTypeNone
	}
}

type ListingType string

const (
	ListingTypeNone       ListingType = ""
	ListingTypeFixedPrice ListingType = "Fixed Price"
	ListingTypeAuction    ListingType = "Auction"
)

// AuctionInfo is copied verbatim from the contract, amounts are in ether
type AuctionInfo struct {
	Seller        domain.Address  `json:"seller"`
	StartingBid   decimal.Decimal `json:"startingBid"`
	HighestBid    decimal.Decimal `json:"highestBid"`
	HighestBidder domain.Address  `json:"highestBidder"`
	EndTime       time.Time       `json:"endTime"`
	Ended         bool            `json:"ended"`
}

// Expired reports whether the end time has been reached, finalized or not
func (a *AuctionInfo) Expired(now time.Time) bool {
	return !now.Before(a.EndTime)
}

// Active reports whether the auction still accepts bids
func (a *AuctionInfo) Active(now time.Time) bool {
	return !a.Ended && !a.Expired(now)
}

// Involves reports whether user is the seller or the highest bidder
func (a *AuctionInfo) Involves(user domain.Address) bool {
	if user.IsEmpty() {
		return false
	}
	return a.Seller.Equals(user) || a.HighestBidder.Equals(user)
}

// Listing is rebuilt on every refresh and never mutated afterwards
type Listing struct {
	Id          domain.TokenId   `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	ImageUri    string           `json:"imageUri"`
	Category    string           `json:"category"`
	Price       decimal.Decimal  `json:"price"`
	PriceInUsd  *decimal.Decimal `json:"priceInUsd,omitempty"`
	Owner       domain.Address   `json:"owner"`
	Status      Status           `json:"status"`
	ListingType ListingType      `json:"listingType"`
	Auction     *AuctionInfo     `json:"auction,omitempty"`
}

type Catalog struct {
	Version     uint64    `json:"version"`
	RefreshedAt time.Time `json:"refreshedAt"`
	Listings    []Listing `json:"listings"`
}

type Profile struct {
	User     domain.Address `json:"user"`
	Owned    []Listing      `json:"owned"`
	Auctions []Listing      `json:"auctions"`
}
