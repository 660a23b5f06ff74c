package model

import (
	"strings"
	"testing"
	"time"
)

func TestSubmission_GetDisplayContent(t *testing.T) {
	tests := []struct {
		content  string
		expected string
	}{
		{"", `""`},
		{"   ", `""`},
		{"Build a bot", "Build a bot"},
		{"multi\nline\tidea", "multi line idea"},
		{strings.Repeat("a", 50), strings.Repeat("a", 39) + "…"},
	}

	for _, test := range tests {
		s := &Submission{Content: test.content}
		if got := s.GetDisplayContent(); got != test.expected {
			t.Errorf("GetDisplayContent() with content=%q = %q, expected %q", test.content, got, test.expected)
		}
	}
}

func TestSubmission_Duration(t *testing.T) {
	start := time.Now()
	s := &Submission{StartedAt: start}
	if s.Duration() != 0 {
		t.Errorf("Expected zero duration for unfinished submission, got %v", s.Duration())
	}

	s.FinishedAt = start.Add(1500 * time.Millisecond)
	if s.Duration() != 1500*time.Millisecond {
		t.Errorf("Expected 1.5s duration, got %v", s.Duration())
	}
}
