package utils

import "fmt"

// FormatSalary renders an optional salary range for display. Either
// bound may be absent; both absent yields a fixed placeholder. No
// ordering between the bounds is assumed.
func FormatSalary(min, max *int) string {
	switch {
	case min != nil && max != nil:
		return fmt.Sprintf("$%s - $%s", groupThousands(*min), groupThousands(*max))
	case min != nil:
		return fmt.Sprintf("$%s+", groupThousands(*min))
	case max != nil:
		return fmt.Sprintf("Up to $%s", groupThousands(*max))
	default:
		return "Salary not specified"
	}
}

// groupThousands formats n with comma separators (e.g. 1234567 -> "1,234,567").
func groupThousands(n int) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := fmt.Sprintf("%d", n)
	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "," + s[i:]
	}
	return sign + s
}
