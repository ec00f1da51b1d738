package testutil

import (
	"context"
	"sync"
)

// MockPublisher records published events for assertions in tests.
type MockPublisher struct {
	mu     sync.Mutex
	Events []PublishedEvent
}

type PublishedEvent struct {
	RoutingKey string
	Data       interface{}
}

func (m *MockPublisher) Publish(ctx context.Context, routingKey string, eventData interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Events = append(m.Events, PublishedEvent{RoutingKey: routingKey, Data: eventData})
	return nil
}

func (m *MockPublisher) Close() error { return nil }

// RoutingKeys returns the routing keys of all recorded events in order.
func (m *MockPublisher) RoutingKeys() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.Events))
	for _, e := range m.Events {
		keys = append(keys, e.RoutingKey)
	}
	return keys
}
