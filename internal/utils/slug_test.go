package utils

import (
	"strings"
	"testing"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Ten Tips for Your CV!", "ten-tips-for-your-cv"},
		{"  spaced   out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"Go 1.24 Released", "go-1-24-released"},
	}
	for _, tt := range tests {
		if got := Slugify(tt.in); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSlugifyNeverEmpty(t *testing.T) {
	for _, in := range []string{"", "!!!", "   ", "???"} {
		got := Slugify(in)
		if got == "" {
			t.Errorf("Slugify(%q) returned empty slug", in)
		}
		if strings.HasPrefix(got, "-") || strings.HasSuffix(got, "-") {
			t.Errorf("Slugify(%q) = %q has edge hyphen", in, got)
		}
	}
}

func TestSlugSuffixLength(t *testing.T) {
	if got := SlugSuffix(); len(got) != 8 {
		t.Errorf("SlugSuffix() = %q, want 8 chars", got)
	}
}
