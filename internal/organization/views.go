package organization

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ormlab/orgstore/internal/model"
)

var validate = validator.New()

// View is the validation-layer projection of a persisted organization. It is
// never written back to the store; it exists to serialize an already-loaded
// record outward with its shape checked.
type View struct {
	ID       string            `json:"id" validate:"required,uuid4"`
	Name     string            `json:"name" validate:"required"`
	Metadata map[string]string `json:"metadata" validate:"required"`
	Users    []UserSummary     `json:"users" validate:"dive"`
}

// UserSummary is the nested user shape inside an organization view.
type UserSummary struct {
	ID        string `json:"id" validate:"required,uuid4"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name" validate:"required"`
}

// NewView projects a loaded organization into its validated view. The Users
// slice reflects whatever was loaded on the model, eagerly or lazily; name
// and metadata are carried over unchanged.
func NewView(m *model.Organization) (*View, error) {
	v := &View{
		ID:       m.ID.String(),
		Name:     m.Name,
		Metadata: m.Metadata,
		Users:    make([]UserSummary, 0, len(m.Users)),
	}
	if v.Metadata == nil {
		v.Metadata = map[string]string{}
	}
	for _, u := range m.Users {
		v.Users = append(v.Users, UserSummary{
			ID:        u.ID.String(),
			FirstName: u.FirstName,
			LastName:  u.LastName,
		})
	}

	if err := validate.Struct(v); err != nil {
		return nil, fmt.Errorf("organization view failed validation: %w", err)
	}
	return v, nil
}
