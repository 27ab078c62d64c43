package redis

import (
	"context"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// RecentKey کلید sorted set پست‌های اخیر
const RecentKey = "feed:recent"

type FeedRepositoryRedis struct {
	Client *redis.Client
	Key    string
}

func NewFeedRepositoryRedis(client *redis.Client) *FeedRepositoryRedis {
	return &FeedRepositoryRedis{
		Client: client,
		Key:    RecentKey,
	}
}

// Add: اضافه کردن postID با امتیاز زمان ایجاد
func (r *FeedRepositoryRedis) Add(ctx context.Context, postID uint64, createdAt time.Time) error {
	z := &redis.Z{
		Score:  float64(createdAt.UnixMilli()),
		Member: strconv.FormatUint(postID, 10),
	}
	if err := r.Client.ZAdd(ctx, r.Key, z).Err(); err != nil {
		return errors.Wrapf(err, "zadd post %d", postID)
	}
	return nil
}

func (r *FeedRepositoryRedis) Remove(ctx context.Context, postID uint64) error {
	if err := r.Client.ZRem(ctx, r.Key, strconv.FormatUint(postID, 10)).Err(); err != nil {
		return errors.Wrapf(err, "zrem post %d", postID)
	}
	return nil
}

// Trim keeps only the newest size entries.
func (r *FeedRepositoryRedis) Trim(ctx context.Context, size int64) error {
	if size <= 0 {
		return nil
	}
	if err := r.Client.ZRemRangeByRank(ctx, r.Key, 0, -size-1).Err(); err != nil {
		return errors.Wrap(err, "trim feed")
	}
	return nil
}

// Recent returns post ids newest first.
func (r *FeedRepositoryRedis) Recent(ctx context.Context, start, limit int64) ([]uint64, error) {
	members, err := r.Client.ZRevRange(ctx, r.Key, start, start+limit-1).Result()
	if err != nil {
		return nil, errors.Wrap(err, "read feed")
	}

	ids := make([]uint64, 0, len(members))
	for _, m := range members {
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			// عضو نامعتبر نادیده گرفته می‌شود
			continue
		}
		ids = append(ids, id)
	}
	return ids, nil
}
