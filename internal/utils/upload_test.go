package utils

import (
	"testing"
	"time"
)

func TestAllowedResumeFile(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"cv.pdf", true},
		{"cv.PDF", true},
		{"resume.doc", true},
		{"resume.docx", true},
		{"resume.txt", false},
		{"script.exe", false},
		{"noextension", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := AllowedResumeFile(tt.in); got != tt.want {
			t.Errorf("AllowedResumeFile(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my resume.pdf", "my_resume.pdf"},
		{"../../etc/passwd", "passwd"},
		{`..\..\evil.docx`, "evil.docx"},
		{"résumé.pdf", "r_sum_.pdf"},
		{"...", "file"},
		{"", "file"},
	}
	for _, tt := range tests {
		if got := SanitizeFilename(tt.in); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestResumeStorageName(t *testing.T) {
	now := time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	got := ResumeStorageName(42, "my cv.pdf", now)
	want := "42_20260314_150926_my_cv.pdf"
	if got != want {
		t.Errorf("ResumeStorageName() = %q, want %q", got, want)
	}
}
