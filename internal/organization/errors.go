package organization

import "errors"

var (
	ErrNameRequired = errors.New("organization name is required")
	ErrNotFound     = errors.New("organization not found")
	// ErrAmbiguous is returned when a lookup that must yield exactly one
	// organization matches several rows.
	ErrAmbiguous = errors.New("organization name matches more than one record")
)
