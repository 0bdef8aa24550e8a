package domain

import (
	"math/big"
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
)

// NftDetails mirrors the marketplace nftDetails getter
type NftDetails struct {
	Title       string
	Description string
	Category    string
	Price       *big.Int
	Status      uint8
}

// AuctionState mirrors the marketplace auctions getter
type AuctionState struct {
	Seller        Address
	StartingBid   *big.Int
	HighestBid    *big.Int
	HighestBidder Address
	EndTime       time.Time
	Ended         bool
}

// TxReceipt is the finalization acknowledgement of a state-changing call
type TxReceipt struct {
	TxHash      TxHash
	BlockNumber uint64
	// MintedTokenId is set when the transaction minted a token
	MintedTokenId TokenId
}

// MarketplaceContract is the read/write surface of the deployed marketplace.
// Write methods block until the transaction is mined and fail with ErrTxReverted
// wrapped with the revert reason when it is not successful.
type MarketplaceContract interface {
	Address() Address

	TotalMinted(ctx.Ctx) (uint64, error)
	TokenURI(ctx.Ctx, TokenId) (string, error)
	OwnerOf(ctx.Ctx, TokenId) (Address, error)
	NftDetails(ctx.Ctx, TokenId) (*NftDetails, error)
	Auction(ctx.Ctx, TokenId) (*AuctionState, error)

	Mint(c ctx.Ctx, uri, title, description, category string, price *big.Int) (*TxReceipt, error)
	Approve(c ctx.Ctx, to Address, id TokenId) (*TxReceipt, error)
	ListForSale(c ctx.Ctx, id TokenId, price *big.Int) (*TxReceipt, error)
	ListForAuction(c ctx.Ctx, id TokenId, startingBid *big.Int, duration time.Duration) (*TxReceipt, error)
	Buy(c ctx.Ctx, id TokenId, value *big.Int) (*TxReceipt, error)
	Bid(c ctx.Ctx, id TokenId, value *big.Int) (*TxReceipt, error)
	EndAuction(c ctx.Ctx, id TokenId) (*TxReceipt, error)
}

// NameResolver resolves ens names into addresses
type NameResolver interface {
	Resolve(c ctx.Ctx, name string) (Address, error)
}
