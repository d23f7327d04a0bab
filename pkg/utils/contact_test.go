package utils

import (
	"testing"
)

func TestNormalizeEmail(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"J.Doe+promo@GMail.com", "jdoe@gmail.com"},
		{"jane.doe+x@gmail.com", "janedoe@gmail.com"},
		{"j.o.h.n@googlemail.com", "john@googlemail.com"},
		{"John.Doe@Example.com", "john.doe@example.com"},
		{"  user@example.com  ", "user@example.com"},
		{"plain@gmail.com", "plain@gmail.com"},
		{"", ""},
		{"not-an-email", ""},
		{"two@@gmail.com", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			actual := NormalizeEmail(tc.input)
			if actual != tc.expected {
				t.Errorf("NormalizeEmail(%q) = %q; want %q", tc.input, actual, tc.expected)
			}
		})
	}
}

func TestNormalizeEmailIdempotent(t *testing.T) {
	inputs := []string{
		"J.Doe+promo@GMail.com",
		"John.Doe@Example.com",
		"a@b.co",
		"not-an-email",
		"",
	}

	for _, input := range inputs {
		once := NormalizeEmail(input)
		twice := NormalizeEmail(once)
		if once != twice {
			t.Errorf("NormalizeEmail not idempotent for %q: %q != %q", input, once, twice)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"a@x.com", true},
		{"john.doe@example.co.uk", true},
		{"not-an-email", false},
		{"missing@tld", false},
		{"white space@example.com", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			actual := IsValidEmail(tc.input)
			if actual != tc.expected {
				t.Errorf("IsValidEmail(%q) = %v; want %v", tc.input, actual, tc.expected)
			}
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"(555) 123-4567", true},
		{"555-123-4567", true},
		{"5551234567", true},
		{"12345", false},
		{"+1 555 123 4567", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			actual := IsValidPhone(tc.input)
			if actual != tc.expected {
				t.Errorf("IsValidPhone(%q) = %v; want %v", tc.input, actual, tc.expected)
			}
		})
	}
}
