package crawl

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/djdocs"
	"github.com/google/uuid"
)

// DefaultMaxAge is how long a cached corpus is considered fresh.
const DefaultMaxAge = 7 * 24 * time.Hour

// Library serves corpora from a cache, building them on a miss.
type Library struct {
	Cache   djdocs.Cache
	Builder *Builder

	// Logger receives cache decode failures. Defaults to slog.Default().
	Logger *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// NewID returns a build identifier. Defaults to a random UUID.
	NewID func() string
}

func (l *Library) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

func (l *Library) now() time.Time {
	if l.Now != nil {
		return l.Now()
	}
	return time.Now()
}

func (l *Library) newID() string {
	if l.NewID != nil {
		return l.NewID()
	}
	return uuid.NewString()
}

// snapshot reads and decodes the cached snapshot for version. A missing,
// corrupt, or empty value yields nil.
func (l *Library) snapshot(ctx context.Context, version djdocs.Version) (*djdocs.Snapshot, error) {
	data, err := l.Cache.Get(ctx, djdocs.CacheKey(version))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	snap, err := djdocs.UnmarshalSnapshot(data)
	if err != nil {
		l.logger().Warn("ignoring cached corpus", "version", version, "err", err)
		return nil, nil
	}
	if len(snap.Entries) == 0 {
		return nil, nil
	}
	return snap, nil
}

// Load returns the cached corpus for version. The boolean is false when
// nothing usable is cached: no value, a value that fails to decode, or a
// snapshot with zero pages. An empty corpus is never served, so callers
// rebuild it instead.
func (l *Library) Load(ctx context.Context, version djdocs.Version) ([]*djdocs.Page, bool, error) {
	snap, err := l.snapshot(ctx, version)
	if err != nil || snap == nil {
		return nil, false, err
	}
	return snap.Pages(), true, nil
}

// Store caches pages as the corpus for version, stamped with the current time.
func (l *Library) Store(ctx context.Context, version djdocs.Version, pages []*djdocs.Page) error {
	data, err := djdocs.MarshalSnapshot(djdocs.NewSnapshot(l.newID(), pages, l.now()))
	if err != nil {
		return djdocs.Errorf(djdocs.EINTERNAL, "failed to encode corpus: %v", err)
	}
	return l.Cache.Set(ctx, djdocs.CacheKey(version), data)
}

// LastRefresh returns when the cached corpus for version was built. The
// boolean is false when nothing usable is cached.
func (l *Library) LastRefresh(ctx context.Context, version djdocs.Version) (time.Time, bool, error) {
	snap, err := l.snapshot(ctx, version)
	if err != nil || snap == nil {
		return time.Time{}, false, err
	}
	return snap.RefreshedAt(), true, nil
}

// Age returns how long ago the cached corpus for version was built.
func (l *Library) Age(ctx context.Context, version djdocs.Version) (time.Duration, bool, error) {
	at, ok, err := l.LastRefresh(ctx, version)
	if err != nil || !ok {
		return 0, false, err
	}
	return l.now().Sub(at), true, nil
}

// ShouldRefresh reports whether the cached corpus for version is missing or
// older than maxAge. A non-positive maxAge means DefaultMaxAge.
func (l *Library) ShouldRefresh(ctx context.Context, version djdocs.Version, maxAge time.Duration) (bool, error) {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	age, ok, err := l.Age(ctx, version)
	if err != nil {
		return false, err
	}
	return !ok || age > maxAge, nil
}

// Refresh builds a fresh corpus from sitemapURL and caches it for version.
func (l *Library) Refresh(ctx context.Context, version djdocs.Version, sitemapURL string, progress ProgressFunc) ([]*djdocs.Page, error) {
	pages, err := l.Builder.Build(ctx, sitemapURL, progress)
	if err != nil {
		return nil, err
	}
	if err := l.Store(ctx, version, pages); err != nil {
		return nil, err
	}
	return pages, nil
}

// Pages returns the cached corpus for version, building and caching one from
// sitemapURL when none is cached.
func (l *Library) Pages(ctx context.Context, version djdocs.Version, sitemapURL string, progress ProgressFunc) ([]*djdocs.Page, error) {
	pages, ok, err := l.Load(ctx, version)
	if err != nil {
		return nil, err
	}
	if ok {
		return pages, nil
	}
	return l.Refresh(ctx, version, sitemapURL, progress)
}
