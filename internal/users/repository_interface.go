package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/ormlab/orgstore/internal/model"
)

// RepositoryInterface defines the contract for user data access
type RepositoryInterface interface {
	Create(ctx context.Context, orgID uuid.UUID, firstName, lastName string) (*model.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]model.User, int64, error)
	Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Ensure Repository implements RepositoryInterface
var _ RepositoryInterface = (*Repository)(nil)
