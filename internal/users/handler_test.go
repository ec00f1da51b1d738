package users

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/ormlab/orgstore/internal/model"
	"github.com/ormlab/orgstore/internal/pagination"
)

// mockService implements ServiceInterface with overridable behavior.
type mockService struct {
	createFunc  func(ctx context.Context, req CreateUserRequest) (*model.User, error)
	getFunc     func(ctx context.Context, id uuid.UUID) (*model.User, error)
	listFunc    func(ctx context.Context, orgID uuid.UUID, params pagination.Params) (*PaginatedUserListResponse, error)
	updateFunc  func(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*model.User, error)
	deleteFunc  func(ctx context.Context, id uuid.UUID) error
	projectFunc func(ctx context.Context, id uuid.UUID) (*View, error)
}

func (m *mockService) CreateUser(ctx context.Context, req CreateUserRequest) (*model.User, error) {
	return m.createFunc(ctx, req)
}

func (m *mockService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return m.getFunc(ctx, id)
}

func (m *mockService) ListUsers(ctx context.Context, orgID uuid.UUID, params pagination.Params) (*PaginatedUserListResponse, error) {
	return m.listFunc(ctx, orgID, params)
}

func (m *mockService) UpdateUser(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*model.User, error) {
	return m.updateFunc(ctx, id, req)
}

func (m *mockService) DeleteUser(ctx context.Context, id uuid.UUID) error {
	return m.deleteFunc(ctx, id)
}

func (m *mockService) ProjectUser(ctx context.Context, id uuid.UUID) (*View, error) {
	return m.projectFunc(ctx, id)
}

// TestHandlerCreateUser_Success tests successful user creation
func TestHandlerCreateUser_Success(t *testing.T) {
	org := &model.Organization{Base: model.Base{ID: uuid.New()}, Name: "Goldman Sachs"}
	handler := NewHandler(&mockService{
		createFunc: func(ctx context.Context, req CreateUserRequest) (*model.User, error) {
			return sampleUser(req.FirstName, req.LastName, org), nil
		},
	})

	body, _ := json.Marshal(CreateUserRequest{
		FirstName:      "Alice",
		LastName:       "Johnson",
		OrganizationID: org.ID.String(),
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	handler.CreateUser(rec, req)

	if rec.Code != http.StatusCreated {
		t.Errorf("Expected status 201, got %d", rec.Code)
	}

	var response SuccessResponse
	json.NewDecoder(rec.Body).Decode(&response)
	if !response.Success {
		t.Error("Expected success to be true")
	}
	if response.User == nil || response.User.FirstName != "Alice" {
		t.Errorf("Expected user 'Alice' in response, got %+v", response.User)
	}
}

// TestHandlerCreateUser_MissingFields tests 400 on validation failure
func TestHandlerCreateUser_MissingFields(t *testing.T) {
	handler := NewHandler(&mockService{
		createFunc: func(ctx context.Context, req CreateUserRequest) (*model.User, error) {
			return nil, ErrMissingFirstName
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()

	handler.CreateUser(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

// TestHandlerCreateUser_OrganizationGone tests 404 when the owner is missing
func TestHandlerCreateUser_OrganizationGone(t *testing.T) {
	handler := NewHandler(&mockService{
		createFunc: func(ctx context.Context, req CreateUserRequest) (*model.User, error) {
			return nil, ErrOrganizationGone
		},
	})

	body, _ := json.Marshal(CreateUserRequest{
		FirstName:      "Alice",
		LastName:       "Johnson",
		OrganizationID: uuid.New().String(),
	})
	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.CreateUser(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

// TestHandlerCreateUser_InvalidJSON tests 400 on malformed payload
func TestHandlerCreateUser_InvalidJSON(t *testing.T) {
	handler := NewHandler(&mockService{})

	req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewReader([]byte(`{not json`)))
	rec := httptest.NewRecorder()

	handler.CreateUser(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

// TestHandlerGetUser_InvalidID tests 400 on malformed uuid
func TestHandlerGetUser_InvalidID(t *testing.T) {
	handler := NewHandler(&mockService{})

	req := httptest.NewRequest(http.MethodGet, "/users/not-a-uuid", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "not-a-uuid"})
	rec := httptest.NewRecorder()

	handler.GetUser(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

// TestHandlerGetUser_NotFound tests 404 mapping
func TestHandlerGetUser_NotFound(t *testing.T) {
	id := uuid.New()
	handler := NewHandler(&mockService{
		getFunc: func(ctx context.Context, gotID uuid.UUID) (*model.User, error) {
			return nil, ErrUserNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/users/"+id.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()

	handler.GetUser(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}

// TestHandlerListUsers_Success tests the per-organization listing route
func TestHandlerListUsers_Success(t *testing.T) {
	orgID := uuid.New()
	handler := NewHandler(&mockService{
		listFunc: func(ctx context.Context, gotOrgID uuid.UUID, params pagination.Params) (*PaginatedUserListResponse, error) {
			if gotOrgID != orgID {
				t.Errorf("Expected organization id %s, got %s", orgID, gotOrgID)
			}
			return &PaginatedUserListResponse{
				Users:      []model.User{},
				Pagination: params.CalculateMeta(0),
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/organizations/"+orgID.String()+"/users", nil)
	req = mux.SetURLVars(req, map[string]string{"id": orgID.String()})
	rec := httptest.NewRecorder()

	handler.ListUsers(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}
}

// TestHandlerProjectUser_Success tests the view endpoint
func TestHandlerProjectUser_Success(t *testing.T) {
	id := uuid.New()
	handler := NewHandler(&mockService{
		projectFunc: func(ctx context.Context, gotID uuid.UUID) (*View, error) {
			return &View{
				ID:        gotID.String(),
				FirstName: "Dave",
				LastName:  "Simpson",
				Organization: OrganizationRef{
					ID:       uuid.New().String(),
					Name:     "JPMorgan Chase",
					Metadata: map[string]string{"test": "foobar"},
				},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/users/"+id.String()+"/view", nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()

	handler.ProjectUser(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var view View
	json.NewDecoder(rec.Body).Decode(&view)
	if view.Organization.Name != "JPMorgan Chase" {
		t.Errorf("Expected nested organization name, got '%s'", view.Organization.Name)
	}
}

// TestHandlerDeleteUser_NotFound tests 404 mapping on delete
func TestHandlerDeleteUser_NotFound(t *testing.T) {
	id := uuid.New()
	handler := NewHandler(&mockService{
		deleteFunc: func(ctx context.Context, gotID uuid.UUID) error {
			return ErrUserNotFound
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/users/"+id.String(), nil)
	req = mux.SetURLVars(req, map[string]string{"id": id.String()})
	rec := httptest.NewRecorder()

	handler.DeleteUser(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
}
