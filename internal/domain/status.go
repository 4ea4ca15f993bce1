package domain

import "strings"

// Status represents the lifecycle state of a Todo or Project.
type Status string

// Valid status values as reported by the application.
const (
	StatusOpen      Status = "open"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// ParseStatus normalizes a raw status string to a Status value.
// The application emits "canceled" but some locales produce the
// "cancelled" spelling; both map to StatusCanceled.
// Returns false if the value is not a recognized status.
func ParseStatus(raw string) (Status, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "open":
		return StatusOpen, true
	case "completed":
		return StatusCompleted, true
	case "canceled", "cancelled":
		return StatusCanceled, true
	default:
		return "", false
	}
}

// IsValid reports whether s is one of the recognized status values.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusCompleted, StatusCanceled:
		return true
	default:
		return false
	}
}

// String returns the status as its wire representation.
func (s Status) String() string {
	return string(s)
}
