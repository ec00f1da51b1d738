package messaging

import (
	"fmt"
	"time"
)

// Event routing keys as constants
const (
	EventOrganizationCreated = "organization.created"
	EventOrganizationDeleted = "organization.deleted"

	EventUserCreated = "user.created"
)

// BaseEvent contains common fields for all events
type BaseEvent struct {
	EventType   string    `json:"event_type"`
	EventID     string    `json:"event_id"`
	Timestamp   time.Time `json:"timestamp"`
	ServiceName string    `json:"service_name"`
}

// OrganizationCreatedEvent represents an organization creation event
type OrganizationCreatedEvent struct {
	BaseEvent
	Data OrganizationCreatedData `json:"data"`
}

type OrganizationCreatedData struct {
	OrganizationID   string            `json:"organization_id"`
	OrganizationName string            `json:"organization_name"`
	Metadata         map[string]string `json:"metadata,omitempty"`
	CreatedAt        time.Time         `json:"created_at"`
}

// OrganizationDeletedEvent represents an organization deletion event
type OrganizationDeletedEvent struct {
	BaseEvent
	Data OrganizationDeletedData `json:"data"`
}

type OrganizationDeletedData struct {
	OrganizationID   string    `json:"organization_id"`
	OrganizationName string    `json:"organization_name"`
	DeletedAt        time.Time `json:"deleted_at"`
}

// UserCreatedEvent represents a user creation event
type UserCreatedEvent struct {
	BaseEvent
	Data UserCreatedData `json:"data"`
}

type UserCreatedData struct {
	UserID         string    `json:"user_id"`
	OrganizationID string    `json:"organization_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewBaseEvent creates a base event with common fields
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		EventType:   eventType,
		EventID:     fmt.Sprintf("%d", time.Now().UnixNano()),
		Timestamp:   time.Now().UTC(),
		ServiceName: "orgstore",
	}
}
