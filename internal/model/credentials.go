package model

import (
	"fmt"
	"strings"
)

// Credential field names, used when reporting which values are missing
const (
	FieldAPIKey = "api_key"
	FieldToken  = "token"
	FieldListID = "list_id"
)

// maskVisibleChars is how many trailing characters of a secret stay visible when masked
const maskVisibleChars = 4

// Credentials holds the Trello key, token and target list for the running session.
// It lives in memory only and is never persisted by the application.
type Credentials struct {
	APIKey string
	Token  string
	ListID string
}

// IsComplete reports whether every field is non-empty
func (c Credentials) IsComplete() bool {
	return len(c.MissingFields()) == 0
}

// MissingFields returns the names of empty fields in declaration order
func (c Credentials) MissingFields() []string {
	var missing []string
	if c.APIKey == "" {
		missing = append(missing, FieldAPIKey)
	}
	if c.Token == "" {
		missing = append(missing, FieldToken)
	}
	if c.ListID == "" {
		missing = append(missing, FieldListID)
	}
	return missing
}

// String masks the key and token so credentials can be logged
func (c Credentials) String() string {
	return fmt.Sprintf("Credentials{APIKey: %s, Token: %s, ListID: %s}", Mask(c.APIKey), Mask(c.Token), c.ListID)
}

// Mask hides all but the last few characters of a secret
func Mask(secret string) string {
	if secret == "" {
		return ""
	}
	runes := []rune(secret)
	if len(runes) <= maskVisibleChars {
		return strings.Repeat("*", len(runes))
	}
	return strings.Repeat("*", len(runes)-maskVisibleChars) + string(runes[len(runes)-maskVisibleChars:])
}

// IdeaSubmission is the free-text content of one idea. Empty content is allowed.
type IdeaSubmission struct {
	Content string
}
