package model

import "testing"

func TestValidJobType(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"full-time", true},
		{"part-time", true},
		{"contract", true},
		{"remote", true},
		{"fulltime", false},
		{"Full-Time", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidJobType(tt.in); got != tt.want {
			t.Errorf("ValidJobType(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestValidExperienceLevel(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"entry", true},
		{"mid", true},
		{"senior", true},
		{"junior", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidExperienceLevel(tt.in); got != tt.want {
			t.Errorf("ValidExperienceLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"devops", "devops"},
		{"data-science", "data-science"},
		{"other", "other"},
		{"underwater-basket-weaving", "other"},
		{"DevOps", "other"},
		{"", "other"},
	}
	for _, tt := range tests {
		if got := NormalizeCategory(tt.in); got != tt.want {
			t.Errorf("NormalizeCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
