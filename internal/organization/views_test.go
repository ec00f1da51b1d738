package organization

import (
	"testing"

	"github.com/google/uuid"

	"github.com/ormlab/orgstore/internal/model"
)

func TestNewView_PreservesFields(t *testing.T) {
	org := &model.Organization{
		Base:     model.Base{ID: uuid.New()},
		Name:     "JPMorgan Chase",
		Metadata: map[string]string{"test": "foobar"},
		Users: []model.User{
			{Base: model.Base{ID: uuid.New()}, FirstName: "Dave", LastName: "Simpson"},
		},
	}

	view, err := NewView(org)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if view.Name != org.Name {
		t.Errorf("Expected name '%s', got '%s'", org.Name, view.Name)
	}
	if view.Metadata["test"] != "foobar" {
		t.Errorf("Expected metadata preserved, got %v", view.Metadata)
	}
	if len(view.Users) != 1 || view.Users[0].LastName != "Simpson" {
		t.Errorf("Expected user carried into view, got %v", view.Users)
	}
}

func TestNewView_NilMetadataBecomesEmptyMap(t *testing.T) {
	org := &model.Organization{
		Base: model.Base{ID: uuid.New()},
		Name: "Goldman Sachs",
	}

	view, err := NewView(org)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if view.Metadata == nil || len(view.Metadata) != 0 {
		t.Errorf("Expected empty metadata map, got %v", view.Metadata)
	}
}

func TestNewView_RejectsMissingName(t *testing.T) {
	org := &model.Organization{
		Base: model.Base{ID: uuid.New()},
	}

	if _, err := NewView(org); err == nil {
		t.Error("Expected validation error for empty name, got nil")
	}
}

func TestNewView_RejectsUnsetID(t *testing.T) {
	org := &model.Organization{Name: "Goldman Sachs"}

	if _, err := NewView(org); err == nil {
		t.Error("Expected validation error for unset id, got nil")
	}
}
