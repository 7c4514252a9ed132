package contracts

import "context"

// EventPublisher delivers domain events to the message broker. Publishing is
// best effort from the caller's point of view: a submit must not fail because
// the broker is down.
type EventPublisher interface {
	Publish(ctx context.Context, eventName string, payload interface{}) error
}
