package activity

import (
	"context"
	"time"

	"postboard/internal/core/activity"

	"github.com/gofrs/uuid"
)

// ActivityRepository جدول outbox رویدادهای پست
type ActivityRepository interface {
	Create(ctx context.Context, a *activity.Activity) (*activity.Activity, error)
	GetPending(ctx context.Context, limit int) ([]*activity.Activity, error)
	MarkDone(ctx context.Context, id uuid.UUID) error
}

// Feed sorted set پست‌های اخیر
type Feed interface {
	Add(ctx context.Context, postID uint64, createdAt time.Time) error
	Remove(ctx context.Context, postID uint64) error
	Trim(ctx context.Context, size int64) error
	Recent(ctx context.Context, start, limit int64) ([]uint64, error)
}
