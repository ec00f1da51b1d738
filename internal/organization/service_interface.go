package organization

import (
	"context"

	"github.com/google/uuid"

	"github.com/ormlab/orgstore/internal/model"
	"github.com/ormlab/orgstore/internal/pagination"
)

// ServiceInterface defines the contract for organization business logic
type ServiceInterface interface {
	CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*model.Organization, error)
	GetOrganization(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	FindOrganization(ctx context.Context, name string, exact bool) (*model.Organization, error)
	ListOrganizations(ctx context.Context, params pagination.Params, search string) (*PaginatedListResponse, error)
	UpdateOrganization(ctx context.Context, id uuid.UUID, req UpdateOrganizationRequest) (*model.Organization, error)
	DeleteOrganization(ctx context.Context, id uuid.UUID) error
	ProjectOrganization(ctx context.Context, id uuid.UUID) (*View, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
