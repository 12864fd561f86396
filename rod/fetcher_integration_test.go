//go:build integration

package rod_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/djdocs/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Integration_DjangoDocs(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	fetcher, err := rod.NewFetcher()
	require.NoError(t, err)
	defer fetcher.Close()

	html, err := fetcher.Fetch(ctx, "https://docs.djangoproject.com/en/dev/topics/db/models/")
	require.NoError(t, err)

	assert.Contains(t, html, `id="docs-content"`, "expected documentation content container")
	assert.Contains(t, html, `aria-labelledby="browse-header"`, "expected browse navigation")
	assert.Contains(t, html, "Models", "expected page title")

	t.Logf("Fetched %d bytes from docs.djangoproject.com", len(html))
}
