package mock

import (
	"context"

	"github.com/fwojciec/djdocs"
)

var _ djdocs.Cache = (*Cache)(nil)

// Cache is a mock implementation of djdocs.Cache.
type Cache struct {
	GetFn func(ctx context.Context, key string) ([]byte, error)
	SetFn func(ctx context.Context, key string, value []byte) error
}

func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	return c.GetFn(ctx, key)
}

func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	return c.SetFn(ctx, key, value)
}
