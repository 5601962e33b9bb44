package model

import "fmt"

// Role is the closed set of account types. Every protected operation
// declares the role it requires, so unknown values must be rejected at
// the edges (registration, JWT claims) rather than carried around as
// free-form strings.
type Role string

const (
	RoleJobSeeker Role = "jobseeker"
	RoleEmployer  Role = "employer"
	RoleAdmin     Role = "admin"
)

// ParseRole converts a raw string into a Role, returning an error for
// anything outside the closed set.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	switch r {
	case RoleJobSeeker, RoleEmployer, RoleAdmin:
		return r, nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// String returns the wire/database representation of the role.
func (r Role) String() string { return string(r) }
