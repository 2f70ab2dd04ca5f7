package hrevent

import (
	"strings"

	hreventerrors "github.com/Pavan812100/jml-hybrid/internal/hrevent/errors"
)

// EventType adalah closed set: hanya tiga lifecycle event yang dikenal.
type EventType string

const (
	EventTypeJoiner EventType = "joiner"
	EventTypeMover  EventType = "mover"
	EventTypeLeaver EventType = "leaver"
)

// ParseEventType normalizes the raw input (trim + lowercase) and rejects
// anything outside the closed set.
func ParseEventType(raw string) (EventType, error) {
	switch et := EventType(strings.ToLower(strings.TrimSpace(raw))); et {
	case EventTypeJoiner, EventTypeMover, EventTypeLeaver:
		return et, nil
	}
	return "", hreventerrors.ErrInvalidEventType
}

func (t EventType) String() string {
	return string(t)
}
