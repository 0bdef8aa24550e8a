package domain

import (
	"math/big"
	"strconv"
	"strings"

	"golang.org/x/xerrors"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// TokenId is the marketplace token id, minted sequentially from 1
type TokenId uint64

func (i TokenId) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

func (i TokenId) BigInt() *big.Int {
	return new(big.Int).SetUint64(uint64(i))
}

func ParseTokenId(s string) (TokenId, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || id == 0 {
		return 0, xerrors.Errorf("invalid token id %q: %w", s, ErrBadParamInput)
	}
	return TokenId(id), nil
}

type TxHash string
