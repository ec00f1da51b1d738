package organization

import (
	"context"

	"github.com/google/uuid"

	"github.com/ormlab/orgstore/internal/model"
)

// RepositoryInterface defines the contract for organization data access
type RepositoryInterface interface {
	Create(ctx context.Context, req CreateOrganizationRequest) (*model.Organization, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Organization, error)
	GetByName(ctx context.Context, name string) (*model.Organization, error)
	SearchByName(ctx context.Context, fragment string) (*model.Organization, error)
	GetByNameWithUsers(ctx context.Context, name string) (*model.Organization, error)
	LoadUsers(ctx context.Context, org *model.Organization) error
	List(ctx context.Context, limit, offset int, search string) ([]model.Organization, int64, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateOrganizationRequest) (*model.Organization, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
