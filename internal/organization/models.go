package organization

// CreateOrganizationRequest represents the request to create a new organization
type CreateOrganizationRequest struct {
	Name     string            `json:"name"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// UpdateOrganizationRequest represents the request to update an organization.
// Nil fields are left untouched.
type UpdateOrganizationRequest struct {
	Name     *string            `json:"name,omitempty"`
	Metadata *map[string]string `json:"metadata,omitempty"`
}
