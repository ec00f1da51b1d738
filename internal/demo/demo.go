// Package demo walks the full round trip the module exists to show off:
// schema reset, a transactional seed of organizations and users, reload via
// partial and exact name lookups, a lazy relationship load, and a projection
// into the validation-layer view.
package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/ormlab/orgstore/internal/db"
	"github.com/ormlab/orgstore/internal/messaging"
	"github.com/ormlab/orgstore/internal/organization"
	"github.com/ormlab/orgstore/internal/users"
)

// Run executes the demonstration against the given store. Errors are
// returned as-is; the demo makes no attempt at recovery.
func Run(ctx context.Context, gdb *gorm.DB, publisher messaging.PublisherInterface) error {
	if err := db.ResetSchema(gdb); err != nil {
		return err
	}

	if err := seed(ctx, gdb, publisher); err != nil {
		return err
	}

	return inspect(ctx, gdb, publisher)
}

// seed writes two organizations and three users in a single unit of work.
// IDs and timestamps are assigned during the flush, not before.
func seed(ctx context.Context, gdb *gorm.DB, publisher messaging.PublisherInterface) error {
	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orgRepo := organization.NewRepository(tx, publisher)
		userRepo := users.NewRepository(tx, publisher)

		goldman, err := orgRepo.Create(ctx, organization.CreateOrganizationRequest{
			Name: "Goldman Sachs",
		})
		if err != nil {
			return err
		}

		chase, err := orgRepo.Create(ctx, organization.CreateOrganizationRequest{
			Name:     "JPMorgan Chase",
			Metadata: map[string]string{"test": "foobar"},
		})
		if err != nil {
			return err
		}

		if _, err := userRepo.Create(ctx, goldman.ID, "Alice", "Johnson"); err != nil {
			return err
		}
		if _, err := userRepo.Create(ctx, goldman.ID, "Bob", "Smith"); err != nil {
			return err
		}
		if _, err := userRepo.Create(ctx, chase.ID, "Dave", "Simpson"); err != nil {
			return err
		}

		log.Println("✓ Seeded 2 organizations and 3 users in one transaction")
		return nil
	})
}

// inspect reloads the seeded data in a fresh session scope and prints what
// the original exploration printed: the partial-match org's metadata, the
// exact-match org's lazily loaded users, and its validated projection.
func inspect(ctx context.Context, gdb *gorm.DB, publisher messaging.PublisherInterface) error {
	orgRepo := organization.NewRepository(gdb.WithContext(ctx).Session(&gorm.Session{}), publisher)

	chase, err := orgRepo.SearchByName(ctx, "chase")
	if err != nil {
		return fmt.Errorf("partial-name lookup failed: %w", err)
	}
	log.Printf("the result of chase.Metadata=%v", chase.Metadata)

	goldman, err := orgRepo.GetByName(ctx, "Goldman Sachs")
	if err != nil {
		return fmt.Errorf("exact-name lookup failed: %w", err)
	}

	// The users collection was not fetched with the organization; this is
	// the deferred relationship load.
	if err := orgRepo.LoadUsers(ctx, goldman); err != nil {
		return err
	}
	for _, u := range goldman.Users {
		log.Printf("the result of goldman.Users: %s %s (id=%s)", u.FirstName, u.LastName, u.ID)
	}

	view, err := organization.NewView(goldman)
	if err != nil {
		return err
	}
	out, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to serialize view: %w", err)
	}
	log.Printf("goldman view=%s", out)

	log.Println("✓ Demo completed")
	return nil
}
