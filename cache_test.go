package djdocs_test

import (
	"testing"
	"time"

	"github.com/fwojciec/djdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshot(t *testing.T) {
	t.Parallel()

	t.Run("replaces references with URLs", func(t *testing.T) {
		t.Parallel()

		pages := djdocs.Link([]*djdocs.RawPage{
			{URL: docsBase + "topics/db/", Title: "Databases", NextURL: docsBase + "topics/db/models/"},
			{URL: docsBase + "topics/db/models/", Title: "Models", PreviousURL: docsBase + "topics/db/"},
		})
		now := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

		snap := djdocs.NewSnapshot("build-1", pages, now)

		require.Len(t, snap.Entries, 2)
		assert.Equal(t, "build-1", snap.BuildID)
		assert.Equal(t, now.UnixMilli(), snap.LastRefresh)
		assert.True(t, now.Equal(snap.RefreshedAt()))
		assert.Nil(t, snap.Entries[0].ParentURL)
		assert.Nil(t, snap.Entries[0].PreviousURL)
		require.NotNil(t, snap.Entries[0].NextURL)
		assert.Equal(t, docsBase+"topics/db/models/", *snap.Entries[0].NextURL)
		require.NotNil(t, snap.Entries[1].ParentURL)
		assert.Equal(t, docsBase+"topics/db/", *snap.Entries[1].ParentURL)
	})

	t.Run("relinks pages after encoding", func(t *testing.T) {
		t.Parallel()

		pages := djdocs.Link([]*djdocs.RawPage{
			{URL: docsBase + "topics/db/", Title: "Databases", NextURL: docsBase + "topics/db/models/"},
			{URL: docsBase + "topics/db/models/", Title: "Models", Content: "# Models", PreviousURL: docsBase + "topics/db/"},
		})

		data, err := djdocs.MarshalSnapshot(djdocs.NewSnapshot("b", pages, time.Now()))
		require.NoError(t, err)
		snap, err := djdocs.UnmarshalSnapshot(data)
		require.NoError(t, err)
		restored := snap.Pages()

		require.Len(t, restored, 2)
		assert.Equal(t, "Models", restored[1].Title)
		assert.Equal(t, "# Models", restored[1].Content)
		assert.Same(t, restored[1], restored[0].Next)
		assert.Same(t, restored[0], restored[1].Previous)
		assert.Same(t, restored[0], restored[1].Parent)
	})

	t.Run("uses null for absent references", func(t *testing.T) {
		t.Parallel()

		pages := djdocs.Link([]*djdocs.RawPage{{URL: docsBase + "topics/db/", Title: "Databases"}})

		data, err := djdocs.MarshalSnapshot(djdocs.NewSnapshot("b", pages, time.UnixMilli(42)))

		require.NoError(t, err)
		assert.JSONEq(t, `{
			"buildId": "b",
			"lastRefresh": 42,
			"entries": [{
				"url": "https://docs.djangoproject.com/en/dev/topics/db/",
				"title": "Databases",
				"content": "",
				"parentUrl": null,
				"previousUrl": null,
				"nextUrl": null
			}]
		}`, string(data))
	})

	t.Run("drops references to URLs missing from the snapshot", func(t *testing.T) {
		t.Parallel()

		missing := docsBase + "topics/gone/"
		snap := &djdocs.Snapshot{
			Entries: []djdocs.SnapshotEntry{
				{URL: docsBase + "topics/db/", Title: "Databases", NextURL: &missing},
			},
		}

		pages := snap.Pages()

		require.Len(t, pages, 1)
		assert.Nil(t, pages[0].Next)
	})

	t.Run("rejects corrupt data", func(t *testing.T) {
		t.Parallel()

		_, err := djdocs.UnmarshalSnapshot([]byte("{not json"))

		require.Error(t, err)
		assert.Equal(t, djdocs.EINVALID, djdocs.ErrorCode(err))
	})
}
