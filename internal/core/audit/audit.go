package audit

import "time"

// Fields ردپای ایجاد و آخرین ویرایش رکورد
type Fields struct {
	CreatedAt     time.Time `gorm:"not null"`
	CreatedBy     uint64    `gorm:"not null"`
	LastUpdatedAt time.Time `gorm:"not null"`
	LastUpdatedBy uint64    `gorm:"not null"`
}

// Created returns fields for a new record; the last-update pair starts equal
// to the creation pair.
func Created(by uint64, at time.Time) Fields {
	return Fields{
		CreatedAt:     at,
		CreatedBy:     by,
		LastUpdatedAt: at,
		LastUpdatedBy: by,
	}
}

// Touch refreshes the last-update pair. Creation metadata is never modified.
func (f *Fields) Touch(by uint64, at time.Time) {
	f.LastUpdatedAt = at
	f.LastUpdatedBy = by
}
