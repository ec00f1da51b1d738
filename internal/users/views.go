package users

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ormlab/orgstore/internal/model"
)

var validate = validator.New()

// View is the validation-layer projection of a persisted user, carrying the
// owning organization inline. Like its organization counterpart it is never
// persisted.
type View struct {
	ID           string          `json:"id" validate:"required,uuid4"`
	FirstName    string          `json:"first_name" validate:"required"`
	LastName     string          `json:"last_name" validate:"required"`
	Organization OrganizationRef `json:"organization" validate:"required"`
}

// OrganizationRef is the nested organization shape inside a user view.
type OrganizationRef struct {
	ID       string            `json:"id" validate:"required,uuid4"`
	Name     string            `json:"name" validate:"required"`
	Metadata map[string]string `json:"metadata"`
}

// NewView projects a user into its validated view. The user's Organization
// relationship must be loaded.
func NewView(m *model.User) (*View, error) {
	if m.Organization == nil {
		return nil, fmt.Errorf("user %s has no organization loaded", m.ID)
	}

	v := &View{
		ID:        m.ID.String(),
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Organization: OrganizationRef{
			ID:       m.Organization.ID.String(),
			Name:     m.Organization.Name,
			Metadata: m.Organization.Metadata,
		},
	}

	if err := validate.Struct(v); err != nil {
		return nil, fmt.Errorf("user view failed validation: %w", err)
	}
	return v, nil
}
