package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventRecognized EventType = "recognized"
	EventRejected   EventType = "rejected"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// RecognitionEvent reports the outcome of one recognition.
type RecognitionEvent struct {
	EventBase
	Orientation DecisionTableOrientation `json:"orientation,omitempty"`
	RuleCount   int                      `json:"rule_count"`
	InputSize   int                      `json:"input_size"`
	Duration    time.Duration            `json:"duration"`
	Err         error                    `json:"-"`
}

// LifecycleHooks defines callbacks for toolkit observability.
type LifecycleHooks struct {
	OnRecognized func(context.Context, *RecognitionEvent)
	OnRejected   func(context.Context, *RecognitionEvent)
}
