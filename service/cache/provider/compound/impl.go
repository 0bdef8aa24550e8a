package compound

import (
	"time"

	"github.com/x-xyz/marketclient/base/ctx"
	"github.com/x-xyz/marketclient/service/cache/provider"
)

type impl struct {
	layers []provider.Provider
}

// NewCompound stacks layers from fastest to slowest. A hit returns immediately
// and back-fills the faster layers that missed.
func NewCompound(layers ...provider.Provider) provider.Provider {
	return &impl{layers}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	for idx, lyr := range im.layers {
		val, ttl, err := lyr.Get(c, key)
		if err == provider.ErrNotFound {
			continue
		} else if err != nil {
			return nil, time.Duration(0), err
		}

		for _, missed := range im.layers[:idx] {
			if err := missed.Set(c, key, val, ttl); err != nil {
				return nil, time.Duration(0), err
			}
		}
		return val, ttl, nil
	}
	return nil, time.Duration(0), provider.ErrNotFound
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	for _, lyr := range im.layers {
		if err := lyr.Set(c, key, value, ttl); err != nil {
			return err
		}
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	for _, lyr := range im.layers {
		if err := lyr.Del(c, key); err != nil {
			return err
		}
	}
	return nil
}
