package user

import (
	"context"

	"postboard/internal/core/user"
	postPort "postboard/internal/ports/post"
)

// UserRepository پورت برای ذخیره‌سازی و بازیابی کاربران
type UserRepository interface {
	Create(ctx context.Context, user *user.User) (*user.User, error)
	FindByID(ctx context.Context, id uint64) (*user.User, error)
	Delete(ctx context.Context, user *user.User) error
	DeleteAll(ctx context.Context) error
}

// DTOها برای UseCase
type SaveUserRequest struct {
	Name     string `json:"name" validate:"required,max=50"`
	Age      int    `json:"age" validate:"gte=0,lte=150"`
	Hobby    string `json:"hobby" validate:"max=100"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6,max=72"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

type UserDTO struct {
	ID    uint64              `json:"id"`
	Name  string              `json:"name"`
	Age   int                 `json:"age"`
	Hobby string              `json:"hobby"`
	Posts []*postPort.PostDTO `json:"posts"`
}
