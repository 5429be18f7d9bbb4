package id

import (
	"strings"
	"testing"
)

func TestGenerateFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		got, err := Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if len(got) != Length {
			t.Errorf("Generate returned ID of length %d, expected %d", len(got), Length)
		}
		for _, c := range got {
			if !strings.ContainsRune(digits, c) {
				t.Errorf("Generate returned invalid character %q in %q", c, got)
			}
		}
	}
}

func TestGenerateUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	iterations := 10000

	for i := 0; i < iterations; i++ {
		id, err := Generate()
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if seen[id] {
			t.Errorf("Generate produced duplicate ID: %s", id)
		}
		seen[id] = true
	}
}

func TestValidFormat(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid ID", "123456789123456", true},
		{"valid with zeros", "100000000000000", true},
		{"too short", "12345678912345", false},
		{"too long", "1234567891234567", false},
		{"empty", "", false},
		{"letters", "12345678912345a", false},
		{"unicode digits", "١٢٣٤٥٦٧٨٩١٢٣٤٥٦", false},
		{"whitespace", "12345678912345 ", false},
		{"negative sign", "-12345678912345", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValidFormat(tt.input); got != tt.want {
				t.Errorf("ValidFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func FuzzValidFormat(f *testing.F) {
	f.Add("123456789123456")
	f.Add("")
	f.Add("abc")
	f.Add(strings.Repeat("7", 15))
	f.Add(strings.Repeat("7", 16))

	f.Fuzz(func(t *testing.T, input string) {
		got := ValidFormat(input)
		if got {
			if len(input) != Length {
				t.Errorf("ValidFormat(%q) = true but length is %d", input, len(input))
			}
			for i := 0; i < len(input); i++ {
				if input[i] < '0' || input[i] > '9' {
					t.Errorf("ValidFormat(%q) = true but contains non-digit %q", input, input[i])
				}
			}
		}
	})
}
