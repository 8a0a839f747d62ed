package validators

import "testing"

func TestIsEmailValid(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"owner@example.com", true},
		{"first.last@clinic.fr", true},
		{"", false},
		{"not-an-email", false},
		{"@example.com", false},
	}

	for _, tt := range tests {
		if got := IsEmailValid(tt.email); got != tt.want {
			t.Errorf("IsEmailValid(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestIsPhoneValid(t *testing.T) {
	tests := []struct {
		phone string
		want  bool
	}{
		{"0612345678", true},
		{"", true}, // optional field
		{"061234567", false},
		{"06123456789", false},
		{"06 12 34 56", false},
		{"abcdefghij", false},
	}

	for _, tt := range tests {
		if got := IsPhoneValid(tt.phone); got != tt.want {
			t.Errorf("IsPhoneValid(%q) = %v, want %v", tt.phone, got, tt.want)
		}
	}
}
