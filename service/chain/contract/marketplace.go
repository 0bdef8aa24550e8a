package contract

import (
	"math/big"
	"time"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	baseabi "github.com/x-xyz/marketclient/base/abi"
	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/service/chain"
)

type MarketplaceCfg struct {
	ChainService chain.Client
	Address      domain.Address
	// Abi overrides the built-in marketplace abi when set
	Abi *ethabi.ABI
}

type Marketplace struct {
	chainService chain.Client
	addr         common.Address
	abi          ethabi.ABI
}

func NewMarketplace(cfg *MarketplaceCfg) *Marketplace {
	_abi := baseabi.MarketplaceABI
	if cfg.Abi != nil {
		_abi = *cfg.Abi
	}
	return &Marketplace{
		chainService: cfg.ChainService,
		addr:         common.HexToAddress(string(cfg.Address)),
		abi:          _abi,
	}
}

func (m *Marketplace) Address() domain.Address {
	return domain.Address(m.addr.Hex()).ToLower()
}

func (m *Marketplace) TotalMinted(ctx bCtx.Ctx) (uint64, error) {
	unpacked, err := m.chainService.Call(ctx, m.addr, m.abi, "getTotalMintedNFTs")
	if err != nil {
		return 0, err
	}
	return unpacked[0].(*big.Int).Uint64(), nil
}

func (m *Marketplace) TokenURI(ctx bCtx.Ctx, id domain.TokenId) (string, error) {
	unpacked, err := m.chainService.Call(ctx, m.addr, m.abi, "tokenURI", id.BigInt())
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (m *Marketplace) OwnerOf(ctx bCtx.Ctx, id domain.TokenId) (domain.Address, error) {
	unpacked, err := m.chainService.Call(ctx, m.addr, m.abi, "ownerOf", id.BigInt())
	if err != nil {
		return "", err
	}
	return toAddress(unpacked[0].(common.Address)), nil
}

func (m *Marketplace) NftDetails(ctx bCtx.Ctx, id domain.TokenId) (*domain.NftDetails, error) {
	unpacked, err := m.chainService.Call(ctx, m.addr, m.abi, "nftDetails", id.BigInt())
	if err != nil {
		return nil, err
	}
	return &domain.NftDetails{
		Title:       unpacked[0].(string),
		Description: unpacked[1].(string),
		Category:    unpacked[2].(string),
		Price:       unpacked[3].(*big.Int),
		Status:      unpacked[4].(uint8),
	}, nil
}

func (m *Marketplace) Auction(ctx bCtx.Ctx, id domain.TokenId) (*domain.AuctionState, error) {
	unpacked, err := m.chainService.Call(ctx, m.addr, m.abi, "auctions", id.BigInt())
	if err != nil {
		return nil, err
	}
	return &domain.AuctionState{
		Seller:        toAddress(unpacked[0].(common.Address)),
		StartingBid:   unpacked[1].(*big.Int),
		HighestBid:    unpacked[2].(*big.Int),
		HighestBidder: toAddress(unpacked[3].(common.Address)),
		EndTime:       time.Unix(unpacked[4].(*big.Int).Int64(), 0),
		Ended:         unpacked[5].(bool),
	}, nil
}

func (m *Marketplace) Mint(ctx bCtx.Ctx, uri, title, description, category string, price *big.Int) (*domain.TxReceipt, error) {
	receipt, err := m.chainService.Transact(ctx, m.addr, m.abi, nil, "mintNFT", uri, title, description, category, price)
	if err != nil {
		return nil, err
	}
	res := toTxReceipt(receipt)
	res.MintedTokenId = m.mintedTokenId(receipt)
	if res.MintedTokenId == 0 {
		ctx.WithField("tx", res.TxHash).Warn("minted token id not found in receipt logs")
	}
	return res, nil
}

func (m *Marketplace) Approve(ctx bCtx.Ctx, to domain.Address, id domain.TokenId) (*domain.TxReceipt, error) {
	return m.transact(ctx, nil, "approve", common.HexToAddress(string(to)), id.BigInt())
}

func (m *Marketplace) ListForSale(ctx bCtx.Ctx, id domain.TokenId, price *big.Int) (*domain.TxReceipt, error) {
	return m.transact(ctx, nil, "listNFTForSale", id.BigInt(), price)
}

// ListForAuction passes the duration in whole seconds
func (m *Marketplace) ListForAuction(ctx bCtx.Ctx, id domain.TokenId, startingBid *big.Int, duration time.Duration) (*domain.TxReceipt, error) {
	seconds := big.NewInt(int64(duration / time.Second))
	return m.transact(ctx, nil, "listNFTForAuction", id.BigInt(), startingBid, seconds)
}

func (m *Marketplace) Buy(ctx bCtx.Ctx, id domain.TokenId, value *big.Int) (*domain.TxReceipt, error) {
	return m.transact(ctx, value, "buyNFT", id.BigInt())
}

func (m *Marketplace) Bid(ctx bCtx.Ctx, id domain.TokenId, value *big.Int) (*domain.TxReceipt, error) {
	return m.transact(ctx, value, "bidOnNFT", id.BigInt())
}

func (m *Marketplace) EndAuction(ctx bCtx.Ctx, id domain.TokenId) (*domain.TxReceipt, error) {
	return m.transact(ctx, nil, "endAuction", id.BigInt())
}

func (m *Marketplace) transact(ctx bCtx.Ctx, value *big.Int, method string, params ...interface{}) (*domain.TxReceipt, error) {
	receipt, err := m.chainService.Transact(ctx, m.addr, m.abi, value, method, params...)
	if err != nil {
		return nil, err
	}
	return toTxReceipt(receipt), nil
}

// mintedTokenId finds the Transfer from the zero address emitted by the marketplace
func (m *Marketplace) mintedTokenId(receipt *types.Receipt) domain.TokenId {
	event, ok := m.abi.Events["Transfer"]
	if !ok {
		return 0
	}
	for _, l := range receipt.Logs {
		if l == nil || l.Address != m.addr || len(l.Topics) != 4 {
			continue
		}
		if l.Topics[0] != event.ID || l.Topics[1] != (common.Hash{}) {
			continue
		}
		return domain.TokenId(l.Topics[3].Big().Uint64())
	}
	return 0
}

func toTxReceipt(receipt *types.Receipt) *domain.TxReceipt {
	res := &domain.TxReceipt{TxHash: domain.TxHash(receipt.TxHash.Hex())}
	if receipt.BlockNumber != nil {
		res.BlockNumber = receipt.BlockNumber.Uint64()
	}
	return res
}

func toAddress(addr common.Address) domain.Address {
	return domain.Address(addr.Hex()).ToLower()
}
