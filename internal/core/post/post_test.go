package post

import (
	"testing"
	"time"

	"postboard/internal/core/user"

	"github.com/stretchr/testify/assert"
)

func TestNewSetsOwnerAndAudit(t *testing.T) {
	owner := &user.User{ID: 7, Name: "son"}
	at := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	p := New(owner, "t", "c", at)

	assert.Equal(t, uint64(7), p.UserID)
	assert.Equal(t, uint64(7), p.CreatedBy)
	assert.Equal(t, at, p.CreatedAt)
	assert.Equal(t, at, p.LastUpdatedAt)
	assert.True(t, p.OwnedBy(7))
	assert.False(t, p.OwnedBy(8))
	assert.False(t, p.OwnedBy(0))
}

func TestAssignToReplacesOwner(t *testing.T) {
	p := New(&user.User{ID: 1}, "t", "c", time.Now())
	p.AssignTo(&user.User{ID: 2})

	assert.Equal(t, uint64(2), p.UserID)
	assert.Equal(t, uint64(2), p.User.ID)
	assert.False(t, p.OwnedBy(1))
}

func TestUpdateKeepsCreationMetadata(t *testing.T) {
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	p := New(&user.User{ID: 1}, "t1", "c1", created)

	later := created.Add(2 * time.Second)
	p.Update("t2", "c2", 1, later)

	assert.Equal(t, "t2", p.Title)
	assert.Equal(t, "c2", p.Content)
	assert.Equal(t, created, p.CreatedAt)
	assert.Equal(t, uint64(1), p.CreatedBy)
	assert.Equal(t, later, p.LastUpdatedAt)
}
