package workers

import (
	"context"
	"time"

	"postboard/internal/core/activity"
	activityPort "postboard/internal/ports/activity"

	"go.uber.org/zap"
)

// ActivityWorker رویدادهای outbox را روی feed اعمال می‌کند
type ActivityWorker struct {
	ActivityRepo activityPort.ActivityRepository
	Feed         activityPort.Feed
	BatchSize    int   // تعداد رکوردهای هر دور
	FeedSize     int64 // حداکثر اندازه feed
	Interval     time.Duration
	Logger       *zap.Logger
}

func NewActivityWorker(
	activityRepo activityPort.ActivityRepository,
	feed activityPort.Feed,
	batchSize int,
	feedSize int64,
	logger *zap.Logger,
) *ActivityWorker {
	return &ActivityWorker{
		ActivityRepo: activityRepo,
		Feed:         feed,
		BatchSize:    batchSize,
		FeedSize:     feedSize,
		Interval:     time.Second,
		Logger:       logger,
	}
}

// Run polls until ctx is cancelled.
func (w *ActivityWorker) Run(ctx context.Context) {
	w.Logger.Info("🚀 ActivityWorker started")
	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		if _, err := w.ProcessBatch(ctx); err != nil {
			w.Logger.Error("❌ Error processing activities:", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			w.Logger.Info("🛑 Activity worker stopped")
			return
		case <-ticker.C:
		}
	}
}

// ProcessBatch applies one batch of pending activities and returns how many
// were marked done. Activities whose feed write fails stay pending.
func (w *ActivityWorker) ProcessBatch(ctx context.Context) (int, error) {
	pending, err := w.ActivityRepo.GetPending(ctx, w.BatchSize)
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	done := 0
	for _, a := range pending {
		if err := w.apply(ctx, a); err != nil {
			w.Logger.Warn("⚠️ Could not apply activity, will retry", zap.String("ID", a.ID.String()), zap.Error(err))
			continue
		}
		if err := w.ActivityRepo.MarkDone(ctx, a.ID); err != nil {
			w.Logger.Warn("⚠️ Warning: could not mark activity done:", zap.Error(err))
			continue
		}
		done++
	}

	if err := w.Feed.Trim(ctx, w.FeedSize); err != nil {
		w.Logger.Warn("⚠️ Warning: could not trim feed", zap.Error(err))
	}

	w.Logger.Info("✅ Processed activities", zap.Int("Count", done), zap.Int("Pending", len(pending)))
	return done, nil
}

func (w *ActivityWorker) apply(ctx context.Context, a *activity.Activity) error {
	switch a.Kind {
	case activity.PostCreated:
		return w.Feed.Add(ctx, a.PostID, a.PostCreatedAt)
	case activity.PostDeleted:
		return w.Feed.Remove(ctx, a.PostID)
	default:
		// رکورد ناشناخته دوباره پردازش نمی‌شود
		w.Logger.Warn("⚠️ Unknown activity kind", zap.String("ID", a.ID.String()), zap.String("Kind", string(a.Kind)))
		return nil
	}
}
