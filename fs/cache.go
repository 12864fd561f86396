package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/djdocs"
)

var _ djdocs.Cache = (*Cache)(nil)

var cacheKeyPattern = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// Cache implements djdocs.Cache with one file per key in a directory. Each
// value has a sidecar xxhash checksum; a value that does not match its
// checksum reads as a miss.
type Cache struct {
	dir string
}

// NewCache creates a Cache rooted at dir. The directory is created on the
// first Set.
func NewCache(dir string) *Cache {
	return &Cache{dir: dir}
}

func (c *Cache) paths(key string) (value, sum string, err error) {
	if !cacheKeyPattern.MatchString(key) {
		return "", "", djdocs.Errorf(djdocs.EINVALID, "invalid cache key %q", key)
	}
	value = filepath.Join(c.dir, key+".json")
	return value, value + ".xxh", nil
}

// Get returns the value stored under key, or nil if there is none.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, error) {
	valuePath, sumPath, err := c.paths(key)
	if err != nil {
		return nil, err
	}

	value, err := os.ReadFile(valuePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	sum, err := os.ReadFile(sumPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}
	if string(sum) != checksum(value) {
		return nil, nil
	}
	return value, nil
}

// Set replaces the value stored under key. Both files are written to
// temporary files first and renamed into place.
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	valuePath, sumPath, err := c.paths(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.dir, 0755); err != nil {
		return err
	}

	// The checksum goes last so a crash between renames reads as a miss.
	if err := writeFileAtomic(valuePath, value); err != nil {
		return err
	}
	return writeFileAtomic(sumPath, []byte(checksum(value)))
}

func writeFileAtomic(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

func checksum(value []byte) string {
	return strconv.FormatUint(xxhash.Sum64(value), 16)
}
