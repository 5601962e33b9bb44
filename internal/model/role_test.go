package model

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in      string
		want    Role
		wantErr bool
	}{
		{"jobseeker", RoleJobSeeker, false},
		{"employer", RoleEmployer, false},
		{"admin", RoleAdmin, false},
		{"", "", true},
		{"JOBSEEKER", "", true},
		{"superadmin", "", true},
		{"jobseeker ", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRole(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	if !RoleEmployer.Valid() {
		t.Error("RoleEmployer.Valid() = false, want true")
	}
	if Role("owner").Valid() {
		t.Error(`Role("owner").Valid() = true, want false`)
	}
}
