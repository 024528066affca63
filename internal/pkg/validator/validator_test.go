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

func TestParseAmount(t *testing.T) {
	valid := map[string]string{
		"500":      "500",
		"135.32":   "135.32",
		" 23.5 ":   "23.5",
		"-10":      "-10",
		"0":        "0",
		"4999.999": "4999.999",
	}
	for input, want := range valid {
		got, ok := ParseAmount(input)
		if !ok {
			t.Errorf("ParseAmount(%q) not ok, want %s", input, want)
			continue
		}
		if got.String() != want {
			t.Errorf("ParseAmount(%q) = %s, want %s", input, got, want)
		}
	}

	invalid := []string{"", "   ", "abc", "12a", "1,200", "₹500"}
	for _, input := range invalid {
		if _, ok := ParseAmount(input); ok {
			t.Errorf("ParseAmount(%q) ok, want rejection", input)
		}
	}
}

func TestIsValidEmployeeCode(t *testing.T) {
	valid := []string{"EMP-001", "1001", "a.b_c", "X"}
	invalid := []string{"", "has space", "emp#1", "über"}
	for _, code := range valid {
		if !IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = false, want true", code)
		}
	}
	for _, code := range invalid {
		if IsValidEmployeeCode(code) {
			t.Errorf("IsValidEmployeeCode(%q) = true, want false", code)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "daily_rate", Message: "must be non-negative"},
		{Field: "employee_id", Message: "is required"},
	}
	want := "daily_rate: must be non-negative; employee_id: is required"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	m := errs.ToMap()
	if m["daily_rate"] != "must be non-negative" || m["employee_id"] != "is required" {
		t.Errorf("ToMap() = %v", m)
	}
}
