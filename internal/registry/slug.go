package registry

import (
	"regexp"
	"strings"
)

var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9-]`)
	dashRuns     = regexp.MustCompile(`-{2,}`)
)

// Slug normalizes a directory name into a template id: lowercased, every
// character outside [a-z0-9-] replaced by "-", runs of "-" collapsed, and
// leading or trailing "-" removed.
func Slug(name string) string {
	s := strings.ToLower(name)
	s = nonSlugChars.ReplaceAllString(s, "-")
	s = dashRuns.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
