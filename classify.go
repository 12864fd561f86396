package djdocs

import (
	"net/url"
	"regexp"
	"strings"
)

// Section identifies which curated part of the documentation a URL belongs to.
type Section string

// Sections recognized by Classify. SectionNone means the URL is excluded
// from the corpus.
const (
	SectionNone      Section = ""
	SectionTopics    Section = "topics"
	SectionTopicsSub Section = "topicsSub"
	SectionRef       Section = "ref"
	SectionRefSub    Section = "refSub"
)

// Sections lists the recognized sections in match order.
var Sections = []Section{SectionTopics, SectionTopicsSub, SectionRef, SectionRefSub}

// URLPatterns maps each section to the anchored pattern a URL must match.
// The ref top-level pattern requires two segments after "ref", one more
// than the topics top-level pattern.
var URLPatterns = map[Section]*regexp.Regexp{
	SectionTopics:    regexp.MustCompile(`^https://docs\.djangoproject\.com/en/dev/topics/[^/]+/?$`),
	SectionTopicsSub: regexp.MustCompile(`^https://docs\.djangoproject\.com/en/dev/topics/[^/]+/[^/]+/?$`),
	SectionRef:       regexp.MustCompile(`^https://docs\.djangoproject\.com/en/dev/ref/[^/]+/[^/]+/?$`),
	SectionRefSub:    regexp.MustCompile(`^https://docs\.djangoproject\.com/en/dev/ref/[^/]+/[^/]+/[^/]+/?$`),
}

// sectionKeywords are the path segments that open a section.
var sectionKeywords = []string{"ref", "topics"}

// ParseSection returns the Section with the given name.
func ParseSection(name string) (Section, error) {
	for _, s := range Sections {
		if string(s) == name {
			return s, nil
		}
	}
	return SectionNone, Errorf(EINVALID, "unknown section %q", name)
}

// Classify returns the section whose pattern matches rawURL, or SectionNone.
func Classify(rawURL string) Section {
	for _, s := range Sections {
		if URLPatterns[s].MatchString(rawURL) {
			return s
		}
	}
	return SectionNone
}

// FilterByPatterns returns the URLs matching any section pattern, in input order.
func FilterByPatterns(urls []string) []string {
	filtered := make([]string, 0, len(urls))
	for _, u := range urls {
		if Classify(u) != SectionNone {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// FilterBySection returns the URLs matching the given section's pattern, in
// input order. An unknown section matches nothing.
func FilterBySection(urls []string, section Section) []string {
	filtered := make([]string, 0)
	re, ok := URLPatterns[section]
	if !ok {
		return filtered
	}
	for _, u := range urls {
		if re.MatchString(u) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// SectionParent returns the URL of the section page that rawURL belongs to.
//
// The section is opened by the first "ref" or "topics" path segment. A URL
// with at most one segment after that keyword is itself a section page and
// has no parent. Otherwise the parent path is the keyword plus one segment,
// with a trailing slash. Scheme, host, query, and fragment are kept as is.
func SectionParent(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", false
	}

	segments := pathSegments(u.Path)
	idx := sectionIndex(segments)
	if idx == -1 {
		return "", false
	}

	if len(segments)-idx-1 <= 1 {
		return "", false
	}

	parent := *u
	parent.Path = "/" + strings.Join(segments[:idx+2], "/") + "/"
	parent.RawPath = ""
	return parent.String(), true
}

// pathSegments splits a URL path into its non-empty segments.
func pathSegments(p string) []string {
	var segments []string
	for _, s := range strings.Split(p, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}
	return segments
}

// sectionIndex returns the position of the first section keyword, or -1.
func sectionIndex(segments []string) int {
	for i, s := range segments {
		for _, kw := range sectionKeywords {
			if s == kw {
				return i
			}
		}
	}
	return -1
}
