package post

import (
	"context"
	"time"

	"postboard/internal/core/page"
	"postboard/internal/core/post"
)

// PostRepository پورت برای ذخیره‌سازی و بازیابی پست‌ها
type PostRepository interface {
	Create(ctx context.Context, post *post.Post) (*post.Post, error)
	FindByID(ctx context.Context, id uint64) (*post.Post, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]*post.Post, error)
	FindAll(ctx context.Context, req page.Request) ([]*post.Post, int64, error)
	FindByUserID(ctx context.Context, userID uint64) ([]*post.Post, error)
	Update(ctx context.Context, post *post.Post) error
	Delete(ctx context.Context, post *post.Post) error
	DeleteAll(ctx context.Context) error
}

// DTOها برای UseCase

// PostRequest is the writable part of a post.
type PostRequest struct {
	Title   string `json:"title" validate:"required,max=100"`
	Content string `json:"content" validate:"required,max=1000"`
}

type OwnerDTO struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

type PostDTO struct {
	ID            uint64    `json:"id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	UserID        uint64    `json:"user_id"`
	Owner         *OwnerDTO `json:"owner,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     uint64    `json:"created_by"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	LastUpdatedBy uint64    `json:"last_updated_by"`
}

// ToDTO projects p. Owner is filled only when the User association was loaded.
func ToDTO(p *post.Post) *PostDTO {
	dto := &PostDTO{
		ID:            p.ID,
		Title:         p.Title,
		Content:       p.Content,
		UserID:        p.UserID,
		CreatedAt:     p.CreatedAt,
		CreatedBy:     p.CreatedBy,
		LastUpdatedAt: p.LastUpdatedAt,
		LastUpdatedBy: p.LastUpdatedBy,
	}
	if p.User.ID != 0 {
		dto.Owner = &OwnerDTO{ID: p.User.ID, Name: p.User.Name}
	}
	return dto
}

// ToDTOs projects a list, never returning nil.
func ToDTOs(posts []*post.Post) []*PostDTO {
	out := make([]*PostDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, ToDTO(p))
	}
	return out
}
