package users

import "errors"

var (
	ErrMissingFirstName = errors.New("first name is required")
	ErrMissingLastName  = errors.New("last name is required")
	ErrMissingOrg       = errors.New("organization id is required")
	ErrUserNotFound     = errors.New("user not found")
	ErrOrganizationGone = errors.New("organization does not exist")
)
