package model

// Organization is a persisted organization. Metadata is a free-form
// string-to-string mapping stored as a serialized JSON blob; Users is a
// relationship, not a stored column, and is populated either eagerly via
// Preload or lazily through the repository's association load.
type Organization struct {
	Base
	Name     string            `gorm:"not null;index" json:"name"`
	Metadata map[string]string `gorm:"serializer:json;type:json" json:"metadata"`

	Users []User `gorm:"foreignKey:OrganizationID" json:"users,omitempty"`
}

func (Organization) TableName() string {
	return "organizations"
}
