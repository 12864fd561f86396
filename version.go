package djdocs

// Version is a supported Django documentation version. It selects the
// cache partition a corpus is stored under.
type Version string

// Supported documentation versions.
const (
	Version60  Version = "6.0"
	VersionDev Version = "dev"
	Version51  Version = "5.1"
	Version50  Version = "5.0"
	Version42  Version = "4.2"
)

// DefaultVersion is the version used when none is selected.
const DefaultVersion = Version60

// Versions lists the supported versions in display order.
var Versions = []Version{Version60, VersionDev, Version51, Version50, Version42}

// ParseVersion returns the Version named s.
// Returns EINVALID if s is not a supported version.
func ParseVersion(s string) (Version, error) {
	for _, v := range Versions {
		if string(v) == s {
			return v, nil
		}
	}
	return "", Errorf(EINVALID, "unsupported documentation version %q", s)
}

// CacheKey returns the cache key the corpus for version is stored under.
func CacheKey(version Version) string {
	return "django-docs-" + string(version)
}
