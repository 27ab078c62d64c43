package database

import (
	"context"

	"postboard/internal/core/user"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// UserRepositoryDatabase پیاده‌سازی UserRepository برای دیتابیس
type UserRepositoryDatabase struct {
	DB *gorm.DB
}

// NewUserRepositoryDatabase سازنده UserRepositoryDatabase
func NewUserRepositoryDatabase(db *gorm.DB) *UserRepositoryDatabase {
	return &UserRepositoryDatabase{DB: db}
}

func (repo *UserRepositoryDatabase) Create(ctx context.Context, user *user.User) (*user.User, error) {
	if err := conn(ctx, repo.DB).Create(user).Error; err != nil {
		return nil, errors.Wrap(err, "create user")
	}
	return user, nil
}

func (repo *UserRepositoryDatabase) FindByID(ctx context.Context, id uint64) (*user.User, error) {
	var u user.User
	if err := conn(ctx, repo.DB).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, translate(err, "find user %d", id)
	}
	return &u, nil
}

func (repo *UserRepositoryDatabase) Delete(ctx context.Context, u *user.User) error {
	res := conn(ctx, repo.DB).Delete(&user.User{}, u.ID)
	if res.Error != nil {
		return errors.Wrapf(res.Error, "delete user %d", u.ID)
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, "delete user %d", u.ID)
	}
	return nil
}

func (repo *UserRepositoryDatabase) DeleteAll(ctx context.Context) error {
	if err := conn(ctx, repo.DB).Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&user.User{}).Error; err != nil {
		return errors.Wrap(err, "delete all users")
	}
	return nil
}
