package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/djdocs"
	main "github.com/fwojciec/djdocs/cmd/djdocs"
	"github.com/fwojciec/djdocs/crawl"
	"github.com/fwojciec/djdocs/fs"
	"github.com/fwojciec/djdocs/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer
	m := main.NewMain()
	err = m.Run(context.Background(), args, &out, &errOut)
	return out.String(), errOut.String(), err
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints help without arguments", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout, "djdocs")
		assert.Contains(t, stdout, "refresh")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		for _, arg := range []string{"help", "--help", "-h"} {
			stdout, _, err := run(t, arg)

			require.NoError(t, err)
			assert.Contains(t, stdout, "Browse the Django documentation")
			assert.Contains(t, stdout, "search")
		}
	})

	t.Run("rejects unsupported version", func(t *testing.T) {
		t.Parallel()

		_, _, err := run(t, "--docs-version", "3.2", "--cache", "fs", "--cache-path", t.TempDir(), "status")

		assert.Error(t, err)
	})

	t.Run("reads fs cache", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		lib := &crawl.Library{Cache: fs.NewCache(dir)}
		require.NoError(t, lib.Store(context.Background(), djdocs.Version51, corpus()))

		stdout, _, err := run(t, "--cache", "fs", "--cache-path", dir, "-V", "5.1", "list", "-s", "topicsSub")

		require.NoError(t, err)
		assert.Equal(t,
			"Models  (Databases)\n  "+docsBase+"topics/db/models/\n"+
				"Making queries  (Databases)\n  "+docsBase+"topics/db/queries/\n",
			stdout)
	})

	t.Run("reads sqlite cache", func(t *testing.T) {
		t.Parallel()

		path := t.TempDir() + "/cache.db"
		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		lib := &crawl.Library{Cache: sqlite.NewCache(db)}
		require.NoError(t, lib.Store(context.Background(), djdocs.DefaultVersion, corpus()))
		require.NoError(t, db.Close())

		stdout, _, err := run(t, "--cache-path", path, "show", docsBase+"topics/db/models/", "--outline")

		require.NoError(t, err)
		assert.Equal(t, "- Models (#models)\n  - Fields (#fields)\n", stdout)
	})

	t.Run("reports empty cache", func(t *testing.T) {
		t.Parallel()

		stdout, _, err := run(t, "--cache", "fs", "--cache-path", t.TempDir(), "-V", "dev", "status")

		require.NoError(t, err)
		assert.Contains(t, stdout, "No cached corpus for Django dev (django-docs-dev).")
	})

	t.Run("keeps versions apart", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		lib := &crawl.Library{Cache: fs.NewCache(dir)}
		require.NoError(t, lib.Store(context.Background(), djdocs.Version42, corpus()))

		stdout, _, err := run(t, "--cache", "fs", "--cache-path", dir, "-V", "4.2", "status")

		require.NoError(t, err)
		assert.Contains(t, stdout, "Cache key:    django-docs-4.2\n")
		assert.Contains(t, stdout, "Pages:        4 (")
	})
}
