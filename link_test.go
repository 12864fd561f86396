package djdocs_test

import (
	"testing"

	"github.com/fwojciec/djdocs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLink(t *testing.T) {
	t.Parallel()

	t.Run("links previous and next chain", func(t *testing.T) {
		t.Parallel()

		a := docsBase + "topics/auth/"
		b := docsBase + "topics/cache/"
		c := docsBase + "topics/db/"
		records := []*djdocs.RawPage{
			{URL: a, Title: "A", NextURL: b},
			{URL: b, Title: "B", PreviousURL: a, NextURL: c},
			{URL: c, Title: "C", PreviousURL: b},
		}

		pages := djdocs.Link(records)

		require.Len(t, pages, 3)
		assert.Same(t, pages[1], pages[0].Next)
		assert.Nil(t, pages[0].Previous)
		assert.Same(t, pages[0], pages[1].Previous)
		assert.Same(t, pages[2], pages[1].Next)
		assert.Same(t, pages[1], pages[2].Previous)
		assert.Nil(t, pages[2].Next)
		for _, p := range pages {
			assert.Nil(t, p.Parent)
		}
	})

	t.Run("links parent by section", func(t *testing.T) {
		t.Parallel()

		records := []*djdocs.RawPage{
			{URL: docsBase + "topics/db/models/", Title: "Models"},
			{URL: docsBase + "topics/db/", Title: "Databases"},
			{URL: docsBase + "ref/contrib/admin/", Title: "Admin"},
			{URL: docsBase + "ref/contrib/admin/actions/", Title: "Actions"},
		}

		pages := djdocs.Link(records)

		require.Len(t, pages, 4)
		assert.Same(t, pages[1], pages[0].Parent)
		assert.Nil(t, pages[1].Parent)
		// ref/contrib/ is not part of the corpus.
		assert.Nil(t, pages[2].Parent)
		assert.Nil(t, pages[3].Parent)
	})

	t.Run("leaves references to unknown URLs empty", func(t *testing.T) {
		t.Parallel()

		records := []*djdocs.RawPage{
			{
				URL:         docsBase + "topics/auth/default/",
				Title:       "Default",
				PreviousURL: docsBase + "intro/",
				NextURL:     docsBase + "topics/auth/passwords/",
			},
		}

		pages := djdocs.Link(records)

		require.Len(t, pages, 1)
		assert.Nil(t, pages[0].Parent)
		assert.Nil(t, pages[0].Previous)
		assert.Nil(t, pages[0].Next)
	})

	t.Run("does not require symmetric navigation", func(t *testing.T) {
		t.Parallel()

		a := docsBase + "topics/auth/"
		b := docsBase + "topics/cache/"
		records := []*djdocs.RawPage{
			{URL: a, NextURL: b},
			{URL: b, PreviousURL: b},
		}

		pages := djdocs.Link(records)

		assert.Same(t, pages[1], pages[0].Next)
		assert.Same(t, pages[1], pages[1].Previous)
	})

	t.Run("copies fields and preserves order", func(t *testing.T) {
		t.Parallel()

		records := []*djdocs.RawPage{
			{URL: docsBase + "topics/b/", Title: "B", Content: "bee"},
			{URL: docsBase + "topics/a/", Title: "A", Content: "ay"},
		}

		pages := djdocs.Link(records)

		require.Len(t, pages, 2)
		assert.Equal(t, docsBase+"topics/b/", pages[0].URL)
		assert.Equal(t, "B", pages[0].Title)
		assert.Equal(t, "bee", pages[0].Content)
		assert.Equal(t, docsBase+"topics/a/", pages[1].URL)
	})

	t.Run("first record wins for duplicate URLs", func(t *testing.T) {
		t.Parallel()

		dup := docsBase + "topics/auth/"
		records := []*djdocs.RawPage{
			{URL: dup, Title: "first"},
			{URL: dup, Title: "second"},
			{URL: docsBase + "topics/cache/", PreviousURL: dup},
		}

		pages := djdocs.Link(records)

		assert.Same(t, pages[0], pages[2].Previous)
	})

	t.Run("returns empty slice for no records", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, djdocs.Link(nil))
	})

	t.Run("references always point into the corpus", func(t *testing.T) {
		t.Parallel()

		records := []*djdocs.RawPage{
			{URL: docsBase + "topics/db/", NextURL: docsBase + "topics/db/models/"},
			{URL: docsBase + "topics/db/models/", PreviousURL: docsBase + "topics/db/", NextURL: docsBase + "topics/db/queries/"},
			{URL: docsBase + "topics/db/queries/", PreviousURL: docsBase + "topics/db/models/", NextURL: docsBase + "topics/http/"},
			{URL: docsBase + "ref/models/fields/", PreviousURL: docsBase + "ref/models/"},
		}

		pages := djdocs.Link(records)

		inCorpus := make(map[*djdocs.Page]bool)
		for _, p := range pages {
			inCorpus[p] = true
		}
		for _, p := range pages {
			for _, ref := range []*djdocs.Page{p.Parent, p.Previous, p.Next} {
				if ref != nil {
					assert.True(t, inCorpus[ref], "dangling reference from %s", p.URL)
				}
			}
		}
	})
}
