package chatbot

import (
	"strings"
	"testing"
)

func TestReply(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"how keyword", "how do I use this", rules[0].reply},
		{"rate keyword", "what are your rates", rules[1].reply},
		{"message keyword", "can I send a message", rules[2].reply},
		{"request keyword", "pickup request please", rules[3].reply},
		{"case insensitive", "WHAT ARE THE RATES?", rules[1].reply},
		{"substring match", "any crates left?", rules[1].reply},
		{"no match", "hello there", Fallback},
		{"empty", "", Fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reply(tt.message); got != tt.want {
				t.Errorf("Reply(%q) = %q, want %q", tt.message, got, tt.want)
			}
		})
	}
}

func TestReplyFirstMatchWins(t *testing.T) {
	// "how do rates work" contains both "how" and "rate"; "how" is
	// checked first, so its reply must win.
	got := Reply("how do rates work")
	if got != rules[0].reply {
		t.Errorf("expected the 'how' reply, got %q", got)
	}
	if !strings.Contains(got, "sidebar") {
		t.Errorf("unexpected reply text: %q", got)
	}
}
