package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDGenerator_GeneratesVersion7(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()

	parsed, err := uuid.Parse(id)
	if err != nil {
		t.Fatalf("generated id is not a uuid: %v", err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
	if g.Generate() == id {
		t.Error("expected distinct ids")
	}
}

func TestIsValidUUID(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"0190c8a0-6f3b-7c1e-9a2b-3c4d5e6f7a8b", true},
		{"not-a-uuid", false},
		{"", false},
		{"{0190c8a0-6f3b-7c1e-9a2b-3c4d5e6f7a8b}", false},
		{"urn:uuid:0190c8a0-6f3b-7c1e-9a2b-3c4d5e6f7a8b", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidUUID(tt.in); got != tt.want {
				t.Errorf("IsValidUUID(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
