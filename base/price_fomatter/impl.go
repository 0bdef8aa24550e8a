package pricefomatter

import (
	"github.com/shopspring/decimal"
	bCtx "github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/base/log"
	"github.com/x-xyz/marketclient/service/coingecko"
)

type PriceFormatterCfg struct {
	CoinGecko coingecko.Client
	// coingecko id of the chain's native currency, ex: ethereum
	NativeTokenId string
}

type impl struct {
	coinGecko     coingecko.Client
	nativeTokenId string
}

func NewPriceFormatter(cfg *PriceFormatterCfg) PriceFormatter {
	id := cfg.NativeTokenId
	if len(id) == 0 {
		id = "ethereum"
	}
	return &impl{
		coinGecko:     cfg.CoinGecko,
		nativeTokenId: id,
	}
}

func (f *impl) ToUsd(ctx bCtx.Ctx, amount decimal.Decimal) (decimal.Decimal, error) {
	price, err := f.coinGecko.GetPrice(ctx, f.nativeTokenId)
	if err != nil {
		ctx.WithFields(log.Fields{
			"token": f.nativeTokenId,
			"err":   err,
		}).Error("coinGecko.GetPrice failed")
		return decimal.Zero, err
	}
	return amount.Mul(price), nil
}
