package bench

import "testing"

func TestParseFocus(t *testing.T) {
	tests := []struct {
		input    string
		expected Focus
		wantErr  bool
	}{
		{"", FocusNone, false},
		{"none", FocusNone, false},
		{"read", FocusRead, false},
		{"write", FocusWrite, false},
		{"Read", FocusRead, false},
		{"WRITE", FocusWrite, false},
		{"both", FocusNone, true},
		{"reads", FocusNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFocus(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFocus(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.expected {
				t.Errorf("ParseFocus(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestFocusString(t *testing.T) {
	tests := []struct {
		focus    Focus
		expected string
	}{
		{FocusNone, "none"},
		{FocusRead, "read"},
		{FocusWrite, "write"},
	}

	for _, tt := range tests {
		if got := tt.focus.String(); got != tt.expected {
			t.Errorf("%d.String() = %q, want %q", tt.focus, got, tt.expected)
		}
	}
}

func TestRandKeyStaysInRange(t *testing.T) {
	for i := 0; i < 10000; i++ {
		if k := randKey(10); k > 10 {
			t.Fatalf("randKey(10) = %d, out of range", k)
		}
	}
}
