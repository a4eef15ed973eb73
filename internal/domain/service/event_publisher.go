package service

import (
	"context"
	"time"
)

// JobLifecycleEvent is the analytics payload published on every committed job
// transition.
type JobLifecycleEvent struct {
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	JobID      string    `json:"job_id"`
	CustomerID string    `json:"customer_id"`
	MechanicID string    `json:"mechanic_id,omitempty"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	OccurredAt time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishJobEvent publishes a job lifecycle event for async consumers.
	PublishJobEvent(ctx context.Context, event *JobLifecycleEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
