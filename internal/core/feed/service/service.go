package feedapp

import (
	"context"
	"fmt"

	activityPort "postboard/internal/ports/activity"
	postPort "postboard/internal/ports/post"
)

const MaxLimit = 100

type FeedService struct {
	Feed           activityPort.Feed
	PostRepository postPort.PostRepository
}

func NewFeedService(feed activityPort.Feed, postRepo postPort.PostRepository) *FeedService {
	return &FeedService{
		Feed:           feed,
		PostRepository: postRepo,
	}
}

// Recent دریافت پست‌های اخیر با شروع و محدودیت
// Ids come from the feed; posts deleted since then are skipped.
func (s *FeedService) Recent(ctx context.Context, start, limit int64) ([]*postPort.PostDTO, error) {
	if start < 0 {
		start = 0
	}
	if limit <= 0 || limit > MaxLimit {
		limit = MaxLimit
	}

	ids, err := s.Feed.Recent(ctx, start, limit)
	if err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}
	posts, err := s.PostRepository.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("recent posts: %w", err)
	}
	return postPort.ToDTOs(posts), nil
}
