package pricefomatter

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	bCtx "github.com/x-xyz/marketclient/base/ctx"
)

func TestFormatEther(t *testing.T) {
	req := require.New(t)
	wei, ok := new(big.Int).SetString("1500000000000000000", 10)
	req.True(ok)
	req.Equal("1.5", FormatEther(wei).String())
	req.Equal("0", FormatEther(nil).String())
	req.Equal("0.000000000000000001", FormatEther(big.NewInt(1)).String())
}

func TestParseEtherHugeExponentIsFast(t *testing.T) {
	start := time.Now()
	_, err := ParseEther("1e10000000")
	require.ErrorIs(t, err, ErrAmountTooLarge)
	require.Less(t, time.Since(start), time.Second)
}

func TestParseEther(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{in: "1.5", want: "1500000000000000000"},
		{in: " 0.01 ", want: "10000000000000000"},
		{in: "2", want: "2000000000000000000"},
		{in: "0.000000000000000001", want: "1"},
		{in: "0.0000000000000000001", wantErr: ErrTooManyDecimal},
		{in: "1e3", want: "1000000000000000000000"},
		{in: "1e10000000", wantErr: ErrAmountTooLarge},
		{in: "123456789e35", wantErr: ErrAmountTooLarge},
		{in: "1e-10000000", wantErr: ErrTooManyDecimal},
		{in: "abc", wantErr: ErrInvalidAmount},
		{in: "", wantErr: ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			req := require.New(t)
			got, err := ParseEther(tt.in)
			if tt.wantErr != nil {
				req.ErrorIs(err, tt.wantErr)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got.String())
		})
	}
}

type coinGeckoMock struct {
	mock.Mock
}

func (m *coinGeckoMock) GetPrice(ctx bCtx.Ctx, id string) (decimal.Decimal, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *coinGeckoMock) GetPriceAtDate(ctx bCtx.Ctx, id string, date string) (decimal.Decimal, error) {
	args := m.Called(ctx, id, date)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func TestToUsd(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()

	cg := &coinGeckoMock{}
	cg.On("GetPrice", mock.Anything, "ethereum").Return(decimal.NewFromInt(2000), nil).Once()
	f := NewPriceFormatter(&PriceFormatterCfg{CoinGecko: cg})
	usd, err := f.ToUsd(ctx, decimal.RequireFromString("1.5"))
	req.NoError(err)
	req.Equal("3000", usd.String())
	cg.AssertExpectations(t)

	failing := &coinGeckoMock{}
	failing.On("GetPrice", mock.Anything, "matic-network").Return(decimal.Zero, errors.New("boom"))
	f = NewPriceFormatter(&PriceFormatterCfg{CoinGecko: failing, NativeTokenId: "matic-network"})
	_, err = f.ToUsd(ctx, decimal.NewFromInt(1))
	req.Error(err)
}
