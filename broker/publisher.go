package broker

import "context"

// Publisher sends listing events to whichever broker is configured.
type Publisher interface {
	Publish(ctx context.Context, topic, key string, value []byte) error
	Close() error
}

// Noop drops every event. It is used when no broker is configured.
type Noop struct{}

func (Noop) Publish(context.Context, string, string, []byte) error { return nil }

func (Noop) Close() error { return nil }
