package messaging

import "context"

// PublisherInterface is what repositories depend on instead of the concrete
// RabbitMQ publisher, so tests can swap in a recorder.
type PublisherInterface interface {
	Publish(ctx context.Context, routingKey string, eventData interface{}) error
	Close() error
}

var _ PublisherInterface = (*Publisher)(nil)
