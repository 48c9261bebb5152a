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
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
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

func TestIsValidPeriod(t *testing.T) {
	valid := []string{"2026-01", "2025-12", "1999-06"}
	invalid := []string{"2026-13", "2026-00", "2026-1", "2026/01", "202601", "", "enero 2026"}
	for _, p := range valid {
		if !IsValidPeriod(p) {
			t.Errorf("IsValidPeriod(%q) = false, want true", p)
		}
	}
	for _, p := range invalid {
		if IsValidPeriod(p) {
			t.Errorf("IsValidPeriod(%q) = true, want false", p)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	year, month, ok := ParsePeriod("2026-03")
	if !ok || year != 2026 || month != 3 {
		t.Errorf("ParsePeriod(\"2026-03\") = (%d, %d, %v), want (2026, 3, true)", year, month, ok)
	}

	if _, _, ok := ParsePeriod("2026-3"); ok {
		t.Error("ParsePeriod(\"2026-3\") = ok, want invalid")
	}
}

func TestIsValidRUT(t *testing.T) {
	valid := []string{"12.345.678-5", "12345678-5", "123456785", "7.654.321-6"}
	invalid := []string{"12.345.678-9", "1", "", "abcdefgh-5", "12345678-K"}
	for _, rut := range valid {
		if !IsValidRUT(rut) {
			t.Errorf("IsValidRUT(%q) = false, want true", rut)
		}
	}
	for _, rut := range invalid {
		if IsValidRUT(rut) {
			t.Errorf("IsValidRUT(%q) = true, want false", rut)
		}
	}
}

func TestCleanCurrency(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"$1.234.567", "1234567"},
		{"$1.234,5", "1234.5"},
		{"45000", "45000"},
		{"  $45.000 ", "45000"},
		{"", "0"},
		{"n/a", "0"},
	}
	for _, c := range cases {
		got := CleanCurrency(c.input)
		if got.String() != c.want {
			t.Errorf("CleanCurrency(%q) = %s, want %s", c.input, got, c.want)
		}
	}
}
