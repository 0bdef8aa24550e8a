package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/domain"
	"github.com/x-xyz/marketclient/domain/listing"
	"github.com/x-xyz/marketclient/domain/txn"
	"github.com/x-xyz/marketclient/service/cache/provider/primitive"
)

func TestDraftRepo(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	r := NewDraftRepo(primitive.NewPrimitive("draft", 1), 0)

	_, err := r.Get(c, 3)
	req.ErrorIs(err, domain.ErrNotFound)

	draft := txn.Draft{
		ListingType:   listing.ListingTypeAuction,
		StartingBid:   "0.5",
		DurationHours: "24",
	}
	req.NoError(r.Save(c, 3, draft))

	res, err := r.Get(c, 3)
	req.NoError(err)
	req.Equal(&draft, res)

	_, err = r.Get(c, 4)
	req.ErrorIs(err, domain.ErrNotFound)

	req.NoError(r.Delete(c, 3))
	_, err = r.Get(c, 3)
	req.ErrorIs(err, domain.ErrNotFound)
}
