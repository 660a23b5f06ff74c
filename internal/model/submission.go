package model

import (
	"strings"
	"time"
)

// displayContentLimit bounds how much idea text is shown in status lines
const displayContentLimit = 40

// Submission tracks one idea through the submission service
type Submission struct {
	ID         string
	Content    string
	Status     SubmissionStatus
	StatusCode int    // HTTP status of the card request, 0 if none was received
	CardID     string // set once Trello created the card
	CardURL    string
	LastError  string
	QueuedAt   time.Time
	StartedAt  time.Time
	FinishedAt time.Time
}

// GetDisplayContent returns a single-line, shortened version of the idea text
func (s *Submission) GetDisplayContent() string {
	content := strings.Join(strings.Fields(s.Content), " ")
	if content == "" {
		return `""`
	}

	runes := []rune(content)
	if len(runes) > displayContentLimit {
		return string(runes[:displayContentLimit-1]) + "…"
	}
	return content
}

// Duration returns how long the request took, or zero if it has not finished
func (s *Submission) Duration() time.Duration {
	if s.StartedAt.IsZero() || s.FinishedAt.IsZero() {
		return 0
	}
	return s.FinishedAt.Sub(s.StartedAt)
}
