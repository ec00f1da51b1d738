package organization

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ormlab/orgstore/internal/messaging"
	"github.com/ormlab/orgstore/internal/model"
)

type Repository struct {
	db        *gorm.DB
	publisher messaging.PublisherInterface
}

// NewRepository creates an organization repository. publisher may be nil;
// events are then skipped.
func NewRepository(db *gorm.DB, publisher messaging.PublisherInterface) *Repository {
	return &Repository{
		db:        db,
		publisher: publisher,
	}
}

// WithTx returns a copy of the repository bound to the given transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx, publisher: r.publisher}
}

// Create persists a new organization. The ID and timestamps are assigned by
// the ORM during the insert; a nil metadata map defaults to an empty one.
func (r *Repository) Create(ctx context.Context, req CreateOrganizationRequest) (*model.Organization, error) {
	org := &model.Organization{
		Name:     req.Name,
		Metadata: req.Metadata,
	}
	if org.Metadata == nil {
		org.Metadata = map[string]string{}
	}

	if err := r.db.WithContext(ctx).Create(org).Error; err != nil {
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	if r.publisher != nil {
		event := messaging.OrganizationCreatedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventOrganizationCreated),
			Data: messaging.OrganizationCreatedData{
				OrganizationID:   org.ID.String(),
				OrganizationName: org.Name,
				Metadata:         org.Metadata,
				CreatedAt:        org.CreatedAt,
			},
		}
		if err := r.publisher.Publish(ctx, messaging.EventOrganizationCreated, event); err != nil {
			log.Printf("Warning: failed to publish organization.created event: %v", err)
		}
	}

	return org, nil
}

// GetByID retrieves a single organization by its primary key.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*model.Organization, error) {
	var org model.Organization
	err := r.db.WithContext(ctx).First(&org, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query organization: %w", err)
	}
	return &org, nil
}

// GetByName retrieves the organization with exactly the given name. Zero
// matches yield ErrNotFound, several yield ErrAmbiguous.
func (r *Repository) GetByName(ctx context.Context, name string) (*model.Organization, error) {
	var orgs []model.Organization
	err := r.db.WithContext(ctx).Where("name = ?", name).Limit(2).Find(&orgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query organization by name: %w", err)
	}
	return exactlyOne(orgs)
}

// SearchByName retrieves the single organization whose name contains the
// given substring, case-insensitively. Like GetByName it requires exactly one
// match.
func (r *Repository) SearchByName(ctx context.Context, fragment string) (*model.Organization, error) {
	pattern := "%" + strings.ToLower(fragment) + "%"
	var orgs []model.Organization
	err := r.db.WithContext(ctx).Where("LOWER(name) LIKE ?", pattern).Limit(2).Find(&orgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search organizations: %w", err)
	}
	return exactlyOne(orgs)
}

func exactlyOne(orgs []model.Organization) (*model.Organization, error) {
	switch len(orgs) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &orgs[0], nil
	default:
		return nil, ErrAmbiguous
	}
}

// LoadUsers lazily fetches the organization's user collection on first
// access after a reload, mirroring a deferred relationship load.
func (r *Repository) LoadUsers(ctx context.Context, org *model.Organization) error {
	err := r.db.WithContext(ctx).Model(org).Association("Users").Find(&org.Users)
	if err != nil {
		return fmt.Errorf("failed to load users for organization %s: %w", org.ID, err)
	}
	return nil
}

// GetByNameWithUsers is the eager counterpart of GetByName + LoadUsers: the
// user collection is preloaded in the same query plan.
func (r *Repository) GetByNameWithUsers(ctx context.Context, name string) (*model.Organization, error) {
	var orgs []model.Organization
	err := r.db.WithContext(ctx).
		Preload("Users", func(db *gorm.DB) *gorm.DB {
			return db.Order("users.created_at ASC")
		}).
		Where("name = ?", name).Limit(2).Find(&orgs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query organization by name: %w", err)
	}
	return exactlyOne(orgs)
}

// List retrieves organizations with pagination and an optional
// case-insensitive name filter. Returns the page and the total match count.
func (r *Repository) List(ctx context.Context, limit, offset int, search string) ([]model.Organization, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Organization{})
	if search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count organizations: %w", err)
	}

	var orgs []model.Organization
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&orgs).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query organizations: %w", err)
	}

	return orgs, total, nil
}

// Update applies the non-nil fields of req to the organization. UpdatedAt is
// refreshed by the ORM.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, req UpdateOrganizationRequest) (*model.Organization, error) {
	org, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		org.Name = *req.Name
	}
	if req.Metadata != nil {
		org.Metadata = *req.Metadata
	}

	if err := r.db.WithContext(ctx).Save(org).Error; err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	return org, nil
}

// Delete soft deletes the organization and publishes the deletion event. The
// record stays in the store until the cleanup job purges it.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	org, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	deletedAt := time.Now()
	if err := r.db.WithContext(ctx).Delete(org).Error; err != nil {
		return fmt.Errorf("failed to soft delete organization: %w", err)
	}

	if r.publisher != nil {
		event := messaging.OrganizationDeletedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventOrganizationDeleted),
			Data: messaging.OrganizationDeletedData{
				OrganizationID:   org.ID.String(),
				OrganizationName: org.Name,
				DeletedAt:        deletedAt,
			},
		}
		if err := r.publisher.Publish(ctx, messaging.EventOrganizationDeleted, event); err != nil {
			log.Printf("Warning: failed to publish organization.deleted event: %v", err)
		}
	}

	return nil
}
