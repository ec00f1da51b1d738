package organization

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ormlab/orgstore/internal/model"
	"github.com/ormlab/orgstore/internal/pagination"
)

// MetricsRecorder counts organization operations. Implementations must
// tolerate being called on every successful write.
type MetricsRecorder interface {
	RecordOrganizationOperation(ctx context.Context, operation string)
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
		s.metrics.RecordOrganizationOperation(ctx, operation)
	}
}

func (s *Service) CreateOrganization(ctx context.Context, req CreateOrganizationRequest) (*model.Organization, error) {
	if req.Name == "" {
		return nil, ErrNameRequired
	}

	org, err := s.repo.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	s.recordOperation(ctx, "create")
	return org, nil
}

func (s *Service) GetOrganization(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	return s.repo.GetByID(ctx, id)
}

// FindOrganization resolves a name to exactly one organization. exact
// selects equality matching; otherwise a case-insensitive substring search
// is used.
func (s *Service) FindOrganization(ctx context.Context, name string, exact bool) (*model.Organization, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	if exact {
		return s.repo.GetByName(ctx, name)
	}
	return s.repo.SearchByName(ctx, name)
}

// ListOrganizations retrieves organizations with pagination
func (s *Service) ListOrganizations(ctx context.Context, params pagination.Params, search string) (*PaginatedListResponse, error) {
	params.Validate()

	orgs, total, err := s.repo.List(ctx, params.Limit, params.CalculateOffset(), search)
	if err != nil {
		return nil, fmt.Errorf("failed to list organizations: %w", err)
	}

	return &PaginatedListResponse{
		Success:       true,
		Organizations: orgs,
		Pagination:    params.CalculateMeta(int(total)),
	}, nil
}

func (s *Service) UpdateOrganization(ctx context.Context, id uuid.UUID, req UpdateOrganizationRequest) (*model.Organization, error) {
	if req.Name != nil && *req.Name == "" {
		return nil, ErrNameRequired
	}

	org, err := s.repo.Update(ctx, id, req)
	if err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	s.recordOperation(ctx, "update")
	return org, nil
}

func (s *Service) DeleteOrganization(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}
	s.recordOperation(ctx, "delete")
	return nil
}

// ProjectOrganization loads the organization's users and projects the result
// into the validated view.
func (s *Service) ProjectOrganization(ctx context.Context, id uuid.UUID) (*View, error) {
	org, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.LoadUsers(ctx, org); err != nil {
		return nil, err
	}
	return NewView(org)
}

// PaginatedListResponse represents a paginated list of organizations
type PaginatedListResponse struct {
	Success       bool                 `json:"success"`
	Organizations []model.Organization `json:"organizations"`
	Pagination    pagination.Meta      `json:"pagination"`
}
