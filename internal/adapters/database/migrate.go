package database

import (
	"postboard/internal/core/activity"
	"postboard/internal/core/post"
	"postboard/internal/core/user"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate اعمال مایگریشن برای مدل‌ها
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&post.Post{},
		&activity.Activity{},
	); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	return nil
}
