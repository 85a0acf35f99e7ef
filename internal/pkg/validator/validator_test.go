package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-01-31"); !ok {
		t.Error("IsValidDate(2025-01-31) = false, want true")
	}
	for _, bad := range []string{"2025-13-01", "31-01-2025", "2025-01-32", "", "abc"} {
		if _, ok := IsValidDate(bad); ok {
			t.Errorf("IsValidDate(%q) = true, want false", bad)
		}
	}
}

func TestIsValidEmployeeNo(t *testing.T) {
	valid := []string{"2021-0001", "1999-9999"}
	invalid := []string{"21-0001", "2021-001", "2021_0001", "20210001", ""}
	for _, no := range valid {
		if !IsValidEmployeeNo(no) {
			t.Errorf("IsValidEmployeeNo(%q) = false, want true", no)
		}
	}
	for _, no := range invalid {
		if IsValidEmployeeNo(no) {
			t.Errorf("IsValidEmployeeNo(%q) = true, want false", no)
		}
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "grade", Message: "must be between 11 and 33"},
	}
	m := errs.ToMap()
	if m["name"] != "is required" || m["grade"] != "must be between 11 and 33" {
		t.Errorf("ToMap() = %v", m)
	}
	if errs.Error() != "name: is required; grade: must be between 11 and 33" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
