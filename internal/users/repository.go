package users

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ormlab/orgstore/internal/messaging"
	"github.com/ormlab/orgstore/internal/model"
)

type Repository struct {
	db        *gorm.DB
	publisher messaging.PublisherInterface
}

// NewRepository creates a user repository. publisher may be nil.
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

// Create persists a new user under the given organization. The owning
// organization must exist; the FK is non-nullable.
func (r *Repository) Create(ctx context.Context, orgID uuid.UUID, firstName, lastName string) (*model.User, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Organization{}).Where("id = ?", orgID).Count(&count).Error
	if err != nil {
		return nil, fmt.Errorf("failed to check organization: %w", err)
	}
	if count == 0 {
		return nil, ErrOrganizationGone
	}

	user := &model.User{
		FirstName:      firstName,
		LastName:       lastName,
		OrganizationID: orgID,
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}

	if r.publisher != nil {
		event := messaging.UserCreatedEvent{
			BaseEvent: messaging.NewBaseEvent(messaging.EventUserCreated),
			Data: messaging.UserCreatedData{
				UserID:         user.ID.String(),
				OrganizationID: orgID.String(),
				FirstName:      user.FirstName,
				LastName:       user.LastName,
				CreatedAt:      user.CreatedAt,
			},
		}
		if err := r.publisher.Publish(ctx, messaging.EventUserCreated, event); err != nil {
			log.Printf("Warning: failed to publish user.created event: %v", err)
		}
	}

	return user, nil
}

// GetByID retrieves a user with its owning organization preloaded.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).Preload("Organization").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}
	return &user, nil
}

// ListByOrganization retrieves the users of one organization with
// pagination, ordered by creation time.
func (r *Repository) ListByOrganization(ctx context.Context, orgID uuid.UUID, limit, offset int) ([]model.User, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.User{}).Where("organization_id = ?", orgID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	var list []model.User
	err := q.Order("created_at ASC").Limit(limit).Offset(offset).Find(&list).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query users: %w", err)
	}

	return list, total, nil
}

// Update applies the non-empty fields of req to the user.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, req UpdateUserRequest) (*model.User, error) {
	user, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}

	// Omit the loaded association so the organization row is not re-saved.
	if err := r.db.WithContext(ctx).Omit("Organization").Save(user).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return user, nil
}

// Delete soft deletes the user.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.User{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
