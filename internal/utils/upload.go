package utils

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// allowedResumeExts lists the only file extensions accepted for resume
// uploads. Anything else is rejected before the file is read.
var allowedResumeExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

// AllowedResumeFile reports whether the original filename carries an
// accepted resume extension. A name with no extension is rejected.
func AllowedResumeFile(filename string) bool {
	return allowedResumeExts[strings.ToLower(filepath.Ext(filename))]
}

// SanitizeFilename reduces an untrusted original filename to a safe
// base name: path components stripped, anything outside
// [A-Za-z0-9._-] replaced with '_'. An empty result becomes "file".
func SanitizeFilename(name string) string {
	base := filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '_' || r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), ".")
	if out == "" {
		return "file"
	}
	return out
}

// ResumeStorageName builds the stored filename for an upload:
// {user_id}_{timestamp}_{sanitized_original_name}. The timestamp keeps
// repeated uploads from the same user from colliding.
func ResumeStorageName(userID uint64, original string, now time.Time) string {
	return fmt.Sprintf("%d_%s_%s", userID, now.UTC().Format("20060102_150405"), SanitizeFilename(original))
}
