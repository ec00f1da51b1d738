package telemetry

import (
	"context"
	"log"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the custom metrics for the service
type Metrics struct {
	OrganizationTotal metric.Int64Counter
	UserTotal         metric.Int64Counter
}

// InitMetrics initializes the custom metrics
func InitMetrics() (*Metrics, error) {
	meter := otel.Meter("github.com/ormlab/orgstore")

	organizationTotal, err := meter.Int64Counter(
		"organization_total",
		metric.WithDescription("Total number of organization operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	userTotal, err := meter.Int64Counter(
		"user_total",
		metric.WithDescription("Total number of user operations"),
		metric.WithUnit("{operation}"),
	)
	if err != nil {
		return nil, err
	}

	log.Println("✓ Custom metrics initialized")

	return &Metrics{
		OrganizationTotal: organizationTotal,
		UserTotal:         userTotal,
	}, nil
}

// RecordOrganizationOperation records an organization operation metric.
// Safe on a nil receiver so callers run unchanged when metrics init failed.
func (m *Metrics) RecordOrganizationOperation(ctx context.Context, operation string) {
	if m == nil {
		return
	}
	m.OrganizationTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

// RecordUserOperation records a user operation metric. Safe on a nil receiver.
func (m *Metrics) RecordUserOperation(ctx context.Context, operation string) {
	if m == nil {
		return
	}
	m.UserTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("operation", operation),
	))
}
