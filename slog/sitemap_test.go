package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/djdocs/mock"
	djslog "github.com/fwojciec/djdocs/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSitemapReader_ReadSitemap(t *testing.T) {
	t.Parallel()

	t.Run("logs read with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SitemapReader{
			ReadSitemapFn: func(_ context.Context, _ string) ([]string, error) {
				return []string{"https://docs.djangoproject.com/en/dev/topics/db/", "https://docs.djangoproject.com/en/dev/intro/"}, nil
			},
		}

		reader := djslog.NewLoggingSitemapReader(inner, logger)
		urls, err := reader.ReadSitemap(context.Background(), "https://docs.djangoproject.com/sitemap-en.xml")

		require.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "sitemap read")
		assert.Contains(t, output, "url=https://docs.djangoproject.com/sitemap-en.xml")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		readErr := errors.New("connection failed")
		inner := &mock.SitemapReader{
			ReadSitemapFn: func(_ context.Context, _ string) ([]string, error) {
				return nil, readErr
			},
		}

		reader := djslog.NewLoggingSitemapReader(inner, logger)
		_, err := reader.ReadSitemap(context.Background(), "")

		assert.Equal(t, readErr, err)
		assert.Contains(t, buf.String(), "err=\"connection failed\"")
	})
}
