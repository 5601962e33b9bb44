package utils

import (
	"strings"

	"github.com/google/uuid"
)

// Slugify converts a title into a URL-safe slug: lowercase ASCII
// letters and digits, runs of anything else collapsed to single
// hyphens. An empty result falls back to a random fragment so a slug
// is never blank.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}
	s := strings.Trim(b.String(), "-")
	if s == "" {
		return SlugSuffix()
	}
	return s
}

// SlugSuffix returns a short random fragment used to disambiguate slug
// collisions (appended as "-<fragment>").
func SlugSuffix() string {
	return uuid.NewString()[:8]
}
