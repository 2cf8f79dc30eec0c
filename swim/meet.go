package swim

import (
	"regexp"
	"strings"
)

// meetSubstitutions maps noisy competition names to short display
// labels. Order matters: earlier, more specific entries win when keys
// overlap. Replacement values never contain a key, which keeps
// Normalize idempotent.
var meetSubstitutions = [][2]string{
	{"National Winter Short-Course Swimming Championship", "National Winter SC"},
	{"National Presidents Cup and Mizuno Age-Group Swimming Championship", "National Presidents Cup"},
	{"National Presidents Cup and Mizuno Swimming Championship", "National Presidents Cup"},
	{"National Games Tainan Swim Team Qualifier", "Tainan National Games Qualifier"},
	{"Tainan National Games Swimming Qualifier", "Tainan National Games Qualifier"},
	{"National Youth Swimming Championship", "National Youth"},
	{"National E-Generation Age-Group", "E-Generation"},
	{"Taichung Mayor Cup Aquatics Meet", "Taichung Mayor Cup"},
	{"Taichung Council Chairman Cup", "Taichung Chairman Cup"},
	{"Tainan Mayor Cup Short-Course", "Tainan Mayor Cup SC"},
	{"Tainan Primary and Secondary Schools", "Tainan Schools"},
	{"Winter Short-Course", "Winter SC"},
}

// MeetNormalizer shortens raw meet names for display. It is built once
// at startup and injected; the output is lossy and must never be used
// as an identity key.
type MeetNormalizer struct {
	subs [][2]string

	leadingYear   *regexp.Regexp
	leadingCode   *regexp.Regexp
	parenthetical *regexp.Regexp
	spaces        *regexp.Regexp
}

// NewMeetNormalizer builds a normalizer with the fixed substitution
// table and cleanup patterns.
func NewMeetNormalizer() *MeetNormalizer {
	return &MeetNormalizer{
		subs:          meetSubstitutions,
		leadingYear:   regexp.MustCompile(`^\d{4}\s*`),
		leadingCode:   regexp.MustCompile(`^\d{3}\s*`),
		parenthetical: regexp.MustCompile(`(?i)\s*\(swimming(?: events)?\)`),
		spaces:        regexp.MustCompile(`\s{2,}`),
	}
}

const (
	genericMeetSuffix = "Swimming Championship"
	// Names ending in this token keep the generic suffix; the bare
	// suffix would leave them ambiguous ("City Spring" vs "City Spring
	// Swimming Championship" are different meets in the source data).
	protectedMeetToken = "Spring"
)

// Normalize maps a raw meet name to its short display label.
func (n *MeetNormalizer) Normalize(name string) string {
	s := strings.TrimSpace(name)
	if s == "" {
		return ""
	}

	for _, sub := range n.subs {
		s = strings.ReplaceAll(s, sub[0], sub[1])
	}

	s = n.leadingYear.ReplaceAllString(s, "")
	s = n.leadingCode.ReplaceAllString(s, "")
	s = n.parenthetical.ReplaceAllString(s, "")
	s = n.stripGenericSuffix(s)

	return strings.TrimSpace(n.spaces.ReplaceAllString(s, " "))
}

// stripGenericSuffix drops a trailing "Swimming Championship" unless
// the remainder ends in the protected token.
func (n *MeetNormalizer) stripGenericSuffix(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasSuffix(trimmed, genericMeetSuffix) {
		return s
	}
	head := strings.TrimSpace(strings.TrimSuffix(trimmed, genericMeetSuffix))
	if strings.HasSuffix(head, protectedMeetToken) {
		return s
	}
	return head
}

// shortCourseMarkers flag meets swum in winter short-course pools.
// Matching is case-insensitive with hyphens folded to spaces.
var shortCourseMarkers = []string{
	"winter short course",
	"short course winter",
	"winter sc",
}

// IsShortCourseWinter reports whether a meet belongs to the winter
// short-course category. Times from these meets are administratively
// non-comparable and never produce a personal best.
func IsShortCourseWinter(meet string) bool {
	m := strings.ToLower(strings.ReplaceAll(meet, "-", " "))
	for _, marker := range shortCourseMarkers {
		if strings.Contains(m, marker) {
			return true
		}
	}
	return false
}
