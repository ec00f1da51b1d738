package organization

import (
	"context"
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/ormlab/orgstore/internal/model"
)

// RetentionPeriod defines how long soft-deleted organizations are retained
// before the cleanup job purges them for good.
const RetentionPeriod = 30 * 24 * time.Hour

// CleanupService permanently deletes organizations whose soft-delete
// timestamp has passed the retention period, together with their users.
type CleanupService struct {
	db *gorm.DB
}

func NewCleanupService(db *gorm.DB) *CleanupService {
	return &CleanupService{db: db}
}

// CountExpired returns how many organizations are eligible for purging.
func (s *CleanupService) CountExpired(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-RetentionPeriod)

	var count int64
	err := s.db.WithContext(ctx).Unscoped().
		Model(&model.Organization{}).
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count expired organizations: %w", err)
	}
	return count, nil
}

// PurgeExpired hard-deletes every expired organization and its users. Each
// organization is purged in its own transaction so one failure does not block
// the rest.
func (s *CleanupService) PurgeExpired(ctx context.Context) (int, error) {
	cutoff := time.Now().Add(-RetentionPeriod)
	log.Printf("Starting cleanup of organizations deleted before %s", cutoff.Format(time.RFC3339))

	var expired []model.Organization
	err := s.db.WithContext(ctx).Unscoped().
		Where("deleted_at IS NOT NULL AND deleted_at < ?", cutoff).
		Order("deleted_at ASC").
		Find(&expired).Error
	if err != nil {
		return 0, fmt.Errorf("failed to query expired organizations: %w", err)
	}

	if len(expired) == 0 {
		log.Println("No expired organizations found for cleanup")
		return 0, nil
	}

	log.Printf("Found %d organizations to permanently delete", len(expired))

	purged := 0
	for _, org := range expired {
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Unscoped().Where("organization_id = ?", org.ID).Delete(&model.User{}).Error; err != nil {
				return fmt.Errorf("failed to delete users: %w", err)
			}
			if err := tx.Unscoped().Delete(&org).Error; err != nil {
				return fmt.Errorf("failed to delete organization record: %w", err)
			}
			return nil
		})
		if err != nil {
			log.Printf("Failed to purge organization %s: %v", org.ID, err)
			continue
		}
		log.Printf("Permanently deleted organization %s (%s)", org.ID, org.Name)
		purged++
	}

	log.Printf("Successfully cleaned up %d/%d expired organizations", purged, len(expired))
	return purged, nil
}
