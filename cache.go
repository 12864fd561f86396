package djdocs

import (
	"context"
	"encoding/json"
	"time"
)

// Cache is an opaque key/value blob store. Values are always read and
// written whole.
type Cache interface {
	// Get returns the value stored under key, or nil if there is none.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
}

// Snapshot is the serialized form of a corpus. References between pages are
// stored as URLs so the encoding has no cycles.
type Snapshot struct {
	BuildID     string          `json:"buildId"`
	Entries     []SnapshotEntry `json:"entries"`
	LastRefresh int64           `json:"lastRefresh"` // Unix milliseconds
}

// SnapshotEntry is one page of a Snapshot.
type SnapshotEntry struct {
	URL         string  `json:"url"`
	Title       string  `json:"title"`
	Content     string  `json:"content"`
	ParentURL   *string `json:"parentUrl"`
	PreviousURL *string `json:"previousUrl"`
	NextURL     *string `json:"nextUrl"`
}

// NewSnapshot flattens pages into a Snapshot refreshed at now.
func NewSnapshot(buildID string, pages []*Page, now time.Time) *Snapshot {
	entries := make([]SnapshotEntry, len(pages))
	for i, p := range pages {
		entries[i] = SnapshotEntry{
			URL:         p.URL,
			Title:       p.Title,
			Content:     p.Content,
			ParentURL:   pageURL(p.Parent),
			PreviousURL: pageURL(p.Previous),
			NextURL:     pageURL(p.Next),
		}
	}
	return &Snapshot{
		BuildID:     buildID,
		Entries:     entries,
		LastRefresh: now.UnixMilli(),
	}
}

// RefreshedAt returns the time the snapshot was built.
func (s *Snapshot) RefreshedAt() time.Time {
	return time.UnixMilli(s.LastRefresh)
}

// Pages rebuilds the linked pages. References to URLs that are not part of
// the snapshot are left nil.
func (s *Snapshot) Pages() []*Page {
	refs := make([]pageRefs, len(s.Entries))
	for i, e := range s.Entries {
		refs[i] = pageRefs{
			page: &Page{
				URL:     e.URL,
				Title:   e.Title,
				Content: e.Content,
			},
			parentURL:   deref(e.ParentURL),
			previousURL: deref(e.PreviousURL),
			nextURL:     deref(e.NextURL),
		}
	}
	return resolve(refs)
}

// MarshalSnapshot encodes s as JSON.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	return json.Marshal(s)
}

// UnmarshalSnapshot decodes a JSON snapshot.
// Returns EINVALID if data is not a valid snapshot.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, Errorf(EINVALID, "corrupt snapshot: %v", err)
	}
	return &s, nil
}

func pageURL(p *Page) *string {
	if p == nil {
		return nil
	}
	u := p.URL
	return &u
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
