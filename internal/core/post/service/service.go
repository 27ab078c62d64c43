package postapp

import (
	"context"
	"fmt"
	"time"

	"postboard/internal/core/activity"
	"postboard/internal/core/apperr"
	"postboard/internal/core/page"
	postEntity "postboard/internal/core/post"
	userEntity "postboard/internal/core/user"
	"postboard/internal/core/validation"
	activityPort "postboard/internal/ports/activity"
	postPort "postboard/internal/ports/post"
	"postboard/internal/ports/transaction"
	userPort "postboard/internal/ports/user"

	"go.uber.org/zap"
)

type PostService struct {
	PostRepository     postPort.PostRepository
	UserRepository     userPort.UserRepository         // برای بررسی وجود کاربر
	ActivityRepository activityPort.ActivityRepository // outbox
	Transactor         transaction.Transactor
	Logger             *zap.Logger
	Now                func() time.Time
}

func NewPostService(
	postRepo postPort.PostRepository,
	userRepo userPort.UserRepository,
	activityRepo activityPort.ActivityRepository,
	tx transaction.Transactor,
	logger *zap.Logger,
) *PostService {
	return &PostService{
		PostRepository:     postRepo,
		UserRepository:     userRepo,
		ActivityRepository: activityRepo,
		Transactor:         tx,
		Logger:             logger,
		Now:                time.Now,
	}
}

// Save ایجاد یک پست جدید برای کاربر فعلی
// An acting user id of 0 means nobody is signed in and is reported as not found.
func (s *PostService) Save(ctx context.Context, actingUserID uint64, req postPort.PostRequest) (uint64, error) {
	if err := validation.Struct(req); err != nil {
		return 0, err
	}

	var postID uint64
	err := s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		owner, err := s.resolveUser(ctx, actingUserID)
		if err != nil {
			return err
		}

		created, err := s.PostRepository.Create(ctx, postEntity.New(owner, req.Title, req.Content, s.Now()))
		if err != nil {
			return err
		}

		if _, err := s.ActivityRepository.Create(ctx, activity.New(activity.PostCreated, created.ID, owner.ID, created.CreatedAt)); err != nil {
			return err
		}
		postID = created.ID
		return nil
	})
	if err != nil {
		s.Logger.Warn("❌ Failed to create post", zap.Uint64("userID", actingUserID), zap.Error(err))
		return 0, fmt.Errorf("save post: %w", err)
	}

	s.Logger.Info("✅ Created post", zap.Uint64("postID", postID), zap.Uint64("userID", actingUserID))
	return postID, nil
}

// Find returns one post. Reads need no signed-in user.
func (s *PostService) Find(ctx context.Context, postID uint64) (*postPort.PostDTO, error) {
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("find post: %w", err)
	}
	return postPort.ToDTO(p), nil
}

// FindAll returns every post, ordered by id, one page at a time. The count
// and the page are read in one transaction so they agree.
func (s *PostService) FindAll(ctx context.Context, req page.Request) (page.Page[*postPort.PostDTO], error) {
	req = req.Normalize()
	var (
		posts []*postEntity.Post
		total int64
	)
	err := s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		posts, total, err = s.PostRepository.FindAll(ctx, req)
		return err
	})
	if err != nil {
		return page.Page[*postPort.PostDTO]{}, fmt.Errorf("find posts: %w", err)
	}
	return page.New(postPort.ToDTOs(posts), req, total), nil
}

// Update ویرایش عنوان و محتوای پست توسط مالک آن
func (s *PostService) Update(ctx context.Context, postID, actingUserID uint64, req postPort.PostRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}

	err := s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := s.resolveOwnedPost(ctx, postID, actingUserID)
		if err != nil {
			return err
		}
		p.Update(req.Title, req.Content, actingUserID, s.Now())
		return s.PostRepository.Update(ctx, p)
	})
	if err != nil {
		s.Logger.Warn("❌ Failed to update post", zap.Uint64("postID", postID), zap.Uint64("userID", actingUserID), zap.Error(err))
		return fmt.Errorf("update post: %w", err)
	}

	s.Logger.Info("✅ Updated post", zap.Uint64("postID", postID))
	return nil
}

// Delete حذف پست توسط مالک آن
func (s *PostService) Delete(ctx context.Context, postID, actingUserID uint64) error {
	err := s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		p, err := s.resolveOwnedPost(ctx, postID, actingUserID)
		if err != nil {
			return err
		}
		if err := s.PostRepository.Delete(ctx, p); err != nil {
			return err
		}
		_, err = s.ActivityRepository.Create(ctx, activity.New(activity.PostDeleted, p.ID, p.UserID, p.CreatedAt))
		return err
	})
	if err != nil {
		s.Logger.Warn("❌ Failed to delete post", zap.Uint64("postID", postID), zap.Uint64("userID", actingUserID), zap.Error(err))
		return fmt.Errorf("delete post: %w", err)
	}

	s.Logger.Info("✅ Deleted post", zap.Uint64("postID", postID))
	return nil
}

func (s *PostService) resolveUser(ctx context.Context, userID uint64) (*userEntity.User, error) {
	if userID == 0 {
		return nil, fmt.Errorf("no signed-in user: %w", apperr.ErrNotFound)
	}
	return s.UserRepository.FindByID(ctx, userID)
}

// resolveOwnedPost checks, in order, that the acting user exists, the post
// exists and the user owns it. A foreign post is reported as not found.
func (s *PostService) resolveOwnedPost(ctx context.Context, postID, actingUserID uint64) (*postEntity.Post, error) {
	if _, err := s.resolveUser(ctx, actingUserID); err != nil {
		return nil, err
	}
	p, err := s.PostRepository.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !p.OwnedBy(actingUserID) {
		return nil, fmt.Errorf("post %d: %w", postID, apperr.ErrNotFound)
	}
	return p, nil
}
