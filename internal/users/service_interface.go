package users

import (
	"context"

	"github.com/google/uuid"

	"github.com/ormlab/orgstore/internal/model"
	"github.com/ormlab/orgstore/internal/pagination"
)

// ServiceInterface defines the contract for user business logic
type ServiceInterface interface {
	CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
	ListUsers(ctx context.Context, orgID uuid.UUID, params pagination.Params) (*PaginatedUserListResponse, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*model.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) error
	ProjectUser(ctx context.Context, id uuid.UUID) (*View, error)
}

// Ensure Service implements ServiceInterface
var _ ServiceInterface = (*Service)(nil)
