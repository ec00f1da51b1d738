package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"gorm.io/gorm"

	"github.com/ormlab/orgstore/internal/messaging"
	"github.com/ormlab/orgstore/internal/organization"
	"github.com/ormlab/orgstore/internal/telemetry"
	"github.com/ormlab/orgstore/internal/users"
)

// SetupRouter initializes all routes for the application. metrics may be nil
// when metric initialization failed; operation counting is then skipped.
func SetupRouter(gdb *gorm.DB, publisher messaging.PublisherInterface, metrics *telemetry.Metrics) *mux.Router {
	orgRepo := organization.NewRepository(gdb, publisher)
	orgService := organization.NewServiceWithMetrics(orgRepo, metrics)
	orgHandler := organization.NewHandler(orgService)

	userRepo := users.NewRepository(gdb, publisher)
	userService := users.NewServiceWithMetrics(userRepo, metrics)
	userHandler := users.NewHandler(userService)

	r := mux.NewRouter()
	r.Use(otelmux.Middleware("orgstore"))
	r.Use(CORSMiddleware)

	// Public health endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"orgstore"}`))
	}).Methods("GET")

	// Organization routes
	r.HandleFunc("/organizations", orgHandler.CreateOrganization).Methods("POST")
	r.HandleFunc("/organizations", orgHandler.ListOrganizations).Methods("GET")
	r.HandleFunc("/organizations/find", orgHandler.FindOrganization).Methods("GET")
	r.HandleFunc("/organizations/{id}", orgHandler.GetOrganization).Methods("GET")
	r.HandleFunc("/organizations/{id}/view", orgHandler.ProjectOrganization).Methods("GET")
	r.HandleFunc("/organizations/{id}", orgHandler.UpdateOrganization).Methods("PUT")
	r.HandleFunc("/organizations/{id}", orgHandler.DeleteOrganization).Methods("DELETE")
	r.HandleFunc("/organizations/{id}/users", userHandler.ListUsers).Methods("GET")

	// User routes
	r.HandleFunc("/users", userHandler.CreateUser).Methods("POST")
	r.HandleFunc("/users/{id}", userHandler.GetUser).Methods("GET")
	r.HandleFunc("/users/{id}/view", userHandler.ProjectUser).Methods("GET")
	r.HandleFunc("/users/{id}", userHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/users/{id}", userHandler.DeleteUser).Methods("DELETE")

	return r
}
