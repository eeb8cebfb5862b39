package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventLookup EventType = "lookup"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// LookupEvent describes one finished lookup, successful or not.
type LookupEvent struct {
	EventBase
	Engine   string        `json:"engine"`
	Strokes  []string      `json:"strokes"`
	Mode     Mode          `json:"mode"`
	Output   string        `json:"output,omitempty"`
	Err      error         `json:"-"`
	Duration time.Duration `json:"duration"`
}

// Applicable reports whether the lookup produced an output.
func (e *LookupEvent) Applicable() bool {
	return e.Err == nil
}

// LookupHooks defines callbacks for translator observability.
type LookupHooks struct {
	OnLookup func(context.Context, *LookupEvent)
}
