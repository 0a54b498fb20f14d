package sanitizer

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"moroccan national", "0612345678", "+212612345678"},
		{"moroccan with spaces", "06 12 34 56 78", "+212612345678"},
		{"already e164", "+212612345678", "+212612345678"},
		{"french e164", "+33612345678", "+33612345678"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.expected {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDialDigits(t *testing.T) {
	if got := DialDigits("+212612345678"); got != "212612345678" {
		t.Errorf("DialDigits = %q, want 212612345678", got)
	}

	if got := DialDigits(""); got != "" {
		t.Errorf("DialDigits(empty) = %q, want empty", got)
	}
}
