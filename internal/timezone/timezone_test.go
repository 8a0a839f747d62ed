package timezone

import "testing"

func TestIsValid(t *testing.T) {
	tests := []struct {
		tz   string
		want bool
	}{
		{"Europe/Paris", true},
		{"America/Sao_Paulo", true},
		{"UTC", true},
		{"", false},
		{"Mars/Olympus", false},
	}

	for _, tt := range tests {
		if got := IsValid(tt.tz); got != tt.want {
			t.Errorf("IsValid(%q) = %v, want %v", tt.tz, got, tt.want)
		}
	}
}

func TestLocation_FallsBackToDefault(t *testing.T) {
	loc := Location("Mars/Olympus")
	if loc.String() != DefaultTimezone {
		t.Fatalf("expected fallback to %s, got %s", DefaultTimezone, loc)
	}

	loc = Location("UTC")
	if loc.String() != "UTC" {
		t.Fatalf("expected UTC, got %s", loc)
	}
}
