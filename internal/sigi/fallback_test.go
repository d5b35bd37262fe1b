package sigi

import (
	"strings"
	"testing"
)

func TestFallbackReply(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string // substring of the expected reply
	}{
		{"greeting", "Hallo Sigi!", "Hallo! Ich bin Sigi"},
		{"greeting short", "hi", "Hallo! Ich bin Sigi"},
		{"weather", "Wie ist das Wetter am See?", "Wetter ist perfekt"},
		{"greeting wins over weather", "Hallo, wie wird das Wetter?", "Hallo! Ich bin Sigi"},
		{"generic", "Welcher Köder für Zander?", "Angel-Buddy"},
		{"empty", "", "Angel-Buddy"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackReply(tt.message)
			if !strings.Contains(got, tt.want) {
				t.Errorf("FallbackReply(%q) = %q, want substring %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestFallbackReplyCaseInsensitive(t *testing.T) {
	if FallbackReply("WETTER") != FallbackReply("wetter") {
		t.Error("matching must ignore case")
	}
}
