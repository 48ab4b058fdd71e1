package domain

import "time"

// AnnotationEventStream is the Redis stream carrying collection change
// events for downstream consumers (stats refresh, export pipelines).
const AnnotationEventStream = "annotations:events"

// StreamMessage is one raw entry read from a stream.
type StreamMessage struct {
	ID   string
	Data string
}

// ChangeEvent is published after every successful whole-collection replace.
// Delivery is best effort: a lost event never fails the write.
type ChangeEvent struct {
	Collection string    `json:"collection"`
	Records    int       `json:"records"`
	Version    string    `json:"version"`
	Actor      string    `json:"actor,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
