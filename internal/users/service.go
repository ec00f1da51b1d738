package users

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ormlab/orgstore/internal/model"
	"github.com/ormlab/orgstore/internal/pagination"
)

// MetricsRecorder counts user operations.
type MetricsRecorder interface {
	RecordUserOperation(ctx context.Context, operation string)
}

type Service struct {
	repo    RepositoryInterface
	metrics MetricsRecorder
}

func NewService(repo RepositoryInterface) *Service {
	return NewServiceWithMetrics(repo, nil)
}

// NewServiceWithMetrics creates a service that counts successful write
// operations through the given recorder.
func NewServiceWithMetrics(repo RepositoryInterface, metrics MetricsRecorder) *Service {
	return &Service{repo: repo, metrics: metrics}
}

func (s *Service) recordOperation(ctx context.Context, operation string) {
	if s.metrics != nil {
		s.metrics.RecordUserOperation(ctx, operation)
	}
}

func (s *Service) CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return nil, fmt.Errorf("invalid organization id: %w", err)
	}

	user, err := s.repo.Create(ctx, orgID, req.FirstName, req.LastName)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.recordOperation(ctx, "create")
	return user, nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.repo.GetByID(ctx, id)
}

// ListUsers retrieves the users of an organization with pagination
func (s *Service) ListUsers(ctx context.Context, orgID uuid.UUID, params pagination.Params) (*PaginatedUserListResponse, error) {
	params.Validate()

	list, total, err := s.repo.ListByOrganization(ctx, orgID, params.Limit, params.CalculateOffset())
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return &PaginatedUserListResponse{
		Users:      list,
		Pagination: params.CalculateMeta(int(total)),
	}, nil
}

func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*model.User, error) {
	user, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.recordOperation(ctx, "update")
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.recordOperation(ctx, "delete")
	return nil
}

// ProjectUser loads a user with its organization and projects it into the
// validated view.
func (s *Service) ProjectUser(ctx context.Context, id uuid.UUID) (*View, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return NewView(user)
}
