package database

import (
	"context"

	"postboard/internal/core/page"
	"postboard/internal/core/post"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PostRepositoryDatabase پیاده‌سازی PostRepository برای دیتابیس
type PostRepositoryDatabase struct {
	DB *gorm.DB
}

// NewPostRepositoryDatabase سازنده PostRepositoryDatabase
func NewPostRepositoryDatabase(db *gorm.DB) *PostRepositoryDatabase {
	return &PostRepositoryDatabase{DB: db}
}

func (repo *PostRepositoryDatabase) Create(ctx context.Context, post *post.Post) (*post.Post, error) {
	// کاربر از قبل وجود دارد، association ذخیره نشود
	if err := conn(ctx, repo.DB).Omit(clause.Associations).Create(post).Error; err != nil {
		return nil, errors.Wrap(err, "create post")
	}
	return post, nil
}

func (repo *PostRepositoryDatabase) FindByID(ctx context.Context, id uint64) (*post.Post, error) {
	var p post.Post
	if err := conn(ctx, repo.DB).Preload("User").Where("id = ?", id).First(&p).Error; err != nil {
		return nil, translate(err, "find post %d", id)
	}
	return &p, nil
}

// FindByIDs returns the posts that still exist, in the order of ids.
func (repo *PostRepositoryDatabase) FindByIDs(ctx context.Context, ids []uint64) ([]*post.Post, error) {
	if len(ids) == 0 {
		return []*post.Post{}, nil
	}
	var found []*post.Post
	if err := conn(ctx, repo.DB).Preload("User").Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, errors.Wrap(err, "find posts by ids")
	}
	byID := make(map[uint64]*post.Post, len(found))
	for _, p := range found {
		byID[p.ID] = p
	}
	posts := make([]*post.Post, 0, len(found))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

// FindAll returns one page ordered by id plus the total number of posts.
func (repo *PostRepositoryDatabase) FindAll(ctx context.Context, req page.Request) ([]*post.Post, int64, error) {
	db := conn(ctx, repo.DB)

	var total int64
	if err := db.Model(&post.Post{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count posts")
	}
	if int64(req.Offset()) >= total {
		return []*post.Post{}, total, nil
	}

	var posts []*post.Post
	if err := db.Preload("User").
		Order("id ASC").
		Offset(req.Offset()).
		Limit(req.Limit()).
		Find(&posts).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list posts")
	}
	return posts, total, nil
}

func (repo *PostRepositoryDatabase) FindByUserID(ctx context.Context, userID uint64) ([]*post.Post, error) {
	var posts []*post.Post
	if err := conn(ctx, repo.DB).Where("user_id = ?", userID).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, errors.Wrapf(err, "find posts of user %d", userID)
	}
	return posts, nil
}

// Update writes only the mutable columns; creation metadata and owner stay as stored.
func (repo *PostRepositoryDatabase) Update(ctx context.Context, p *post.Post) error {
	res := conn(ctx, repo.DB).Model(&post.Post{}).
		Where("id = ?", p.ID).
		Select("title", "content", "last_updated_at", "last_updated_by").
		Updates(map[string]any{
			"title":           p.Title,
			"content":         p.Content,
			"last_updated_at": p.LastUpdatedAt,
			"last_updated_by": p.LastUpdatedBy,
		})
	if res.Error != nil {
		return errors.Wrapf(res.Error, "update post %d", p.ID)
	}
	// RowsAffected is not checked: MySQL reports changed rows, not matched
	// ones, so an update with unchanged values would look like a miss.
	// Callers load the post in the same transaction first.
	return nil
}

func (repo *PostRepositoryDatabase) Delete(ctx context.Context, p *post.Post) error {
	res := conn(ctx, repo.DB).Delete(&post.Post{}, p.ID)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete post %d", p.ID)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete post %d", p.ID)
	}
	return nil
}

func (repo *PostRepositoryDatabase) DeleteAll(ctx context.Context) error {
	if err := conn(ctx, repo.DB).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&post.Post{}).Error; err != nil {
		return errors.Wrap(err, "delete all posts")
	}
	return nil
}
