package activity

import (
	"time"

	"github.com/gofrs/uuid"
)

type Kind string

const (
	PostCreated Kind = "post_created"
	PostDeleted Kind = "post_deleted"
)

const (
	StatusPending = "pending"
	StatusDone    = "done"
)

// Activity رکورد outbox که همراه با تغییر پست در همان تراکنش ذخیره می‌شود
type Activity struct {
	Seq           uint64     `gorm:"primaryKey;autoIncrement"` // ترتیب درج
	ID            uuid.UUID  `gorm:"type:char(36);uniqueIndex;not null"`
	Kind          Kind       `gorm:"type:varchar(20);not null"`
	PostID        uint64     `gorm:"not null"`
	UserID        uint64     `gorm:"not null"`
	PostCreatedAt time.Time  `gorm:"not null"`                       // امتیاز در sorted set
	Status        string     `gorm:"type:varchar(20);not null;index"` // pending, done
	CreatedAt     time.Time  `gorm:"autoCreateTime"`
	ProcessedAt   *time.Time `gorm:"index"`
}

// New returns a pending activity for the given post event.
func New(kind Kind, postID, userID uint64, postCreatedAt time.Time) *Activity {
	return &Activity{
		ID:            uuid.Must(uuid.NewV4()),
		Kind:          kind,
		PostID:        postID,
		UserID:        userID,
		PostCreatedAt: postCreatedAt,
		Status:        StatusPending,
	}
}
