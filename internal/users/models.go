package users

import (
	"github.com/ormlab/orgstore/internal/model"
	"github.com/ormlab/orgstore/internal/pagination"
)

// CreateUserRequest represents the request to create a new user
type CreateUserRequest struct {
	FirstName      string `json:"first_name"`
	LastName       string `json:"last_name"`
	OrganizationID string `json:"organization_id"`
}

// UpdateUserRequest represents the request to update a user. Empty fields
// are left untouched.
type UpdateUserRequest struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// Validate validates the create user request
func (r *CreateUserRequest) Validate() error {
	if r.FirstName == "" {
		return ErrMissingFirstName
	}
	if r.LastName == "" {
		return ErrMissingLastName
	}
	if r.OrganizationID == "" {
		return ErrMissingOrg
	}
	return nil
}

// PaginatedUserListResponse represents a paginated list of users
type PaginatedUserListResponse struct {
	Users      []model.User    `json:"users"`
	Pagination pagination.Meta `json:"pagination"`
}
