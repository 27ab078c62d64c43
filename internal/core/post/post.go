package post

import (
	"time"

	"postboard/internal/core/audit"
	"postboard/internal/core/user"
)

const (
	MaxTitleLength   = 100
	MaxContentLength = 1000
)

// Post مالکیت پست فقط از طریق UserID نگهداری می‌شود
type Post struct {
	ID      uint64    `gorm:"primaryKey;autoIncrement"`
	Title   string    `gorm:"size:100;not null"`
	Content string    `gorm:"size:1000;not null"`
	UserID  uint64    `gorm:"not null;index"`
	User    user.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"` // فقط برای Preload
	audit.Fields
}

// New builds an unsaved post owned by owner.
func New(owner *user.User, title, content string, at time.Time) *Post {
	p := &Post{
		Title:   title,
		Content: content,
		Fields:  audit.Created(owner.ID, at),
	}
	p.AssignTo(owner)
	return p
}

// AssignTo makes owner the only owner of p. The user's post list is derived
// from UserID, so there is no second side to keep in sync.
func (p *Post) AssignTo(owner *user.User) {
	p.UserID = owner.ID
	p.User = *owner
}

// OwnedBy reports whether userID owns p.
func (p *Post) OwnedBy(userID uint64) bool {
	return userID != 0 && p.UserID == userID
}

// Update replaces title and content and refreshes the last-update metadata.
func (p *Post) Update(title, content string, by uint64, at time.Time) {
	p.Title = title
	p.Content = content
	p.Touch(by, at)
}
