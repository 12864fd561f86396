package sqlite

import (
	"context"
	"database/sql"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/djdocs"
)

var _ djdocs.Cache = (*Cache)(nil)

// Cache implements djdocs.Cache on the cache table. Each value is stored with
// an xxhash checksum; a value that no longer matches its checksum reads as
// a miss.
type Cache struct {
	db *DB

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time
}

// NewCache creates a new Cache.
func NewCache(db *DB) *Cache {
	return &Cache{db: db, Now: time.Now}
}

// Get returns the value stored under key, or nil if there is none.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var sum string

	err := c.db.QueryRowContext(ctx, `
		SELECT value, checksum
		FROM cache
		WHERE key = ?
	`, key).Scan(&value, &sum)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if sum != checksum(value) {
		return nil, nil
	}
	return value, nil
}

// Set replaces the value stored under key.
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return djdocs.Errorf(djdocs.EINVALID, "cache key required")
	}
	if value == nil {
		value = []byte{}
	}

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO cache (key, value, checksum, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			checksum = excluded.checksum,
			updated_at = excluded.updated_at
	`, key, value, checksum(value), c.Now().UTC().Format(time.RFC3339))

	return err
}

func checksum(value []byte) string {
	return strconv.FormatUint(xxhash.Sum64(value), 16)
}
