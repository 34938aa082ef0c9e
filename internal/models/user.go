// Package models defines the portal's persisted record types and the static
// content types consumed by the quiz and resource components.
package models

import (
	"strings"
	"time"
)

// UserRecord is the single locally registered account. At most one record
// exists in the store at any time; registering again replaces it entirely,
// quiz history included.
//
// Credentials are stored as a per-account salt plus a verifier derived via
// cryptox (argon2id then SHA-256). The plaintext password never touches
// the store.
type UserRecord struct {
	Email        string        `json:"email"`
	Salt         []byte        `json:"salt"`
	Verifier     []byte        `json:"verifier"`
	DisplayName  string        `json:"display_name"`
	JoinedAt     time.Time     `json:"joined_at"`
	QuizAttempts []QuizAttempt `json:"quiz_attempts"`
}

// QuizAttempt is one completed or timed-out run through the question bank.
// Append-only: insertion order is chronological order.
type QuizAttempt struct {
	ID          string    `json:"id"`
	CompletedAt time.Time `json:"completed_at"`
	Score       int       `json:"score"`
	Total       int       `json:"total"`
}

// SavedResource is a bookmark reference into the static resource catalog.
// The saved list is ordered and holds each id at most once.
type SavedResource struct {
	ID int `json:"id"`
}

// DisplayNameFromEmail derives the default display name: the local part of
// the address, or the whole string if it has no '@'.
func DisplayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
