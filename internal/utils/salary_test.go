package utils

import "testing"

func intp(n int) *int { return &n }

func TestFormatSalary(t *testing.T) {
	tests := []struct {
		name string
		min  *int
		max  *int
		want string
	}{
		{"both", intp(60000), intp(90000), "$60,000 - $90,000"},
		{"min only", intp(75000), nil, "$75,000+"},
		{"max only", nil, intp(45000), "Up to $45,000"},
		{"neither", nil, nil, "Salary not specified"},
		{"inverted bounds kept as given", intp(90000), intp(60000), "$90,000 - $60,000"},
		{"small values ungrouped", intp(500), intp(900), "$500 - $900"},
	}
	for _, tt := range tests {
		if got := FormatSalary(tt.min, tt.max); got != tt.want {
			t.Errorf("%s: FormatSalary() = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45000, "-45,000"},
	}
	for _, tt := range tests {
		if got := groupThousands(tt.in); got != tt.want {
			t.Errorf("groupThousands(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
