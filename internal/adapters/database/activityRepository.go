package database

import (
	"context"
	"time"

	"postboard/internal/core/activity"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type ActivityRepositoryDatabase struct {
	DB *gorm.DB
}

func NewActivityRepositoryDatabase(db *gorm.DB) *ActivityRepositoryDatabase {
	return &ActivityRepositoryDatabase{DB: db}
}

func (repo *ActivityRepositoryDatabase) Create(ctx context.Context, a *activity.Activity) (*activity.Activity, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.Must(uuid.NewV4())
	}
	if err := conn(ctx, repo.DB).Create(a).Error; err != nil {
		return nil, errors.Wrap(err, "create activity")
	}
	return a, nil
}

// GetPending returns pending activities in insertion order.
func (repo *ActivityRepositoryDatabase) GetPending(ctx context.Context, limit int) ([]*activity.Activity, error) {
	var pending []*activity.Activity
	if err := conn(ctx, repo.DB).
		Where("status = ?", activity.StatusPending).
		Order("seq ASC").
		Limit(limit).
		Find(&pending).Error; err != nil {
		return nil, errors.Wrap(err, "get pending activities")
	}
	return pending, nil
}

func (repo *ActivityRepositoryDatabase) MarkDone(ctx context.Context, id uuid.UUID) error {
	now := time.Now()
	if err := conn(ctx, repo.DB).Model(&activity.Activity{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": activity.StatusDone, "processed_at": &now}).Error; err != nil {
		return errors.Wrapf(err, "mark activity %s done", id)
	}
	return nil
}
