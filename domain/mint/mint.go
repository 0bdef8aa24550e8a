package mint

import (
	"io"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
)

type MintRequest struct {
	File        io.Reader
	FileName    string
	Title       string
	Description string
	Category    string
	// Price in ether
	Price string
}

type MintResult struct {
	TokenId     domain.TokenId `json:"tokenId"`
	TxHash      domain.TxHash  `json:"txHash"`
	ImageUri    string         `json:"imageUri"`
	MetadataUri string         `json:"metadataUri"`
}

type Usecase interface {
	Mint(ctx.Ctx, MintRequest) (*MintResult, error)
}
