package user

import (
	"postboard/internal/core/audit"
)

type User struct {
	ID       uint64 `gorm:"primaryKey;autoIncrement"`
	Name     string `gorm:"size:50;not null"`
	Age      int    `gorm:"not null"`
	Hobby    string `gorm:"size:100"`
	Password string // هش bcrypt، خالی یعنی امکان ورود ندارد
	audit.Fields
}

// CanLogin reports whether a password hash has been set.
func (u *User) CanLogin() bool {
	return u.Password != ""
}
