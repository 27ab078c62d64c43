package userapp_test

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"postboard/internal/adapters/database"
	"postboard/internal/adapters/database/dbtest"
	"postboard/internal/core/apperr"
	"postboard/internal/core/page"
	postapp "postboard/internal/core/post/service"
	userapp "postboard/internal/core/user/service"
	postPort "postboard/internal/ports/post"
	userPort "postboard/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var secret = []byte("test-secret")

func newServices(t *testing.T) (*userapp.UserService, *postapp.PostService) {
	t.Helper()

	db := dbtest.Open(t)
	postRepo := database.NewPostRepositoryDatabase(db)
	userRepo := database.NewUserRepositoryDatabase(db)
	activityRepo := database.NewActivityRepositoryDatabase(db)
	tx := database.NewTransactor(db)

	return userapp.NewUserService(userRepo, postRepo, activityRepo, tx, zap.NewNop(), secret),
		postapp.NewPostService(postRepo, userRepo, activityRepo, tx, zap.NewNop())
}

func TestSaveAndFind(t *testing.T) {
	users, _ := newServices(t)
	ctx := context.Background()

	id, err := users.Save(ctx, userPort.SaveUserRequest{Name: "son", Age: 30, Hobby: "soccer"})
	require.NoError(t, err)

	u, err := users.Find(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "son", u.Name)
	assert.Equal(t, 30, u.Age)
	assert.Equal(t, "soccer", u.Hobby)
	assert.NotNil(t, u.Posts)
	assert.Empty(t, u.Posts)
}

func TestFindMissingUser(t *testing.T) {
	users, _ := newServices(t)

	_, err := users.Find(context.Background(), 42)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestSaveValidatesInput(t *testing.T) {
	users, _ := newServices(t)
	ctx := context.Background()

	for name, req := range map[string]userPort.SaveUserRequest{
		"no name":        {Age: 30},
		"negative age":   {Name: "son", Age: -1},
		"short password": {Name: "son", Age: 30, Password: "abc"},
	} {
		_, err := users.Save(ctx, req)
		assert.True(t, errors.Is(err, apperr.ErrInvalidInput), name)
	}
}

func TestFindListsOwnedPostsInCreationOrder(t *testing.T) {
	users, posts := newServices(t)
	ctx := context.Background()
	a, err := users.Save(ctx, userPort.SaveUserRequest{Name: "a", Age: 20})
	require.NoError(t, err)
	b, err := users.Save(ctx, userPort.SaveUserRequest{Name: "b", Age: 21})
	require.NoError(t, err)

	first, err := posts.Save(ctx, a, postPort.PostRequest{Title: "a1", Content: "c"})
	require.NoError(t, err)
	_, err = posts.Save(ctx, b, postPort.PostRequest{Title: "b1", Content: "c"})
	require.NoError(t, err)
	second, err := posts.Save(ctx, a, postPort.PostRequest{Title: "a2", Content: "c"})
	require.NoError(t, err)

	u, err := users.Find(ctx, a)
	require.NoError(t, err)
	require.Len(t, u.Posts, 2)
	assert.Equal(t, first, u.Posts[0].ID)
	assert.Equal(t, second, u.Posts[1].ID)
	for _, p := range u.Posts {
		require.NotNil(t, p.Owner)
		assert.Equal(t, a, p.Owner.ID)
	}
}

func TestDeleteCascadesToPosts(t *testing.T) {
	users, posts := newServices(t)
	ctx := context.Background()
	a, err := users.Save(ctx, userPort.SaveUserRequest{Name: "a", Age: 20})
	require.NoError(t, err)
	b, err := users.Save(ctx, userPort.SaveUserRequest{Name: "b", Age: 21})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		_, err = posts.Save(ctx, a, postPort.PostRequest{Title: "a", Content: "c"})
		require.NoError(t, err)
	}
	kept, err := posts.Save(ctx, b, postPort.PostRequest{Title: "b", Content: "c"})
	require.NoError(t, err)

	require.NoError(t, users.Delete(ctx, a))

	_, err = users.Find(ctx, a)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	all, err := posts.FindAll(ctx, page.Of(0, 10))
	require.NoError(t, err)
	assert.Equal(t, int64(1), all.TotalElements)
	assert.Equal(t, kept, all.Content[0].ID)

	err = users.Delete(ctx, a)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestLoginIssuesToken(t *testing.T) {
	users, _ := newServices(t)
	ctx := context.Background()
	now := time.Now()
	users.Now = func() time.Time { return now }

	id, err := users.Save(ctx, userPort.SaveUserRequest{Name: "son", Age: 30, Password: "password"})
	require.NoError(t, err)

	res, err := users.Login(ctx, id, "password")
	require.NoError(t, err)
	assert.Equal(t, now.Add(userapp.TokenTTL).Unix(), res.ExpiresAt)

	claims := &jwt.StandardClaims{}
	_, err = jwt.ParseWithClaims(res.Token, claims, func(*jwt.Token) (interface{}, error) { return secret, nil })
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatUint(id, 10), claims.Subject)
	assert.Equal(t, userapp.TokenIssuer, claims.Issuer)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	users, _ := newServices(t)
	ctx := context.Background()

	withPassword, err := users.Save(ctx, userPort.SaveUserRequest{Name: "son", Age: 30, Password: "password"})
	require.NoError(t, err)
	withoutPassword, err := users.Save(ctx, userPort.SaveUserRequest{Name: "kim", Age: 30})
	require.NoError(t, err)

	_, err = users.Login(ctx, withPassword, "wrong-password")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = users.Login(ctx, withoutPassword, "")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)

	_, err = users.Login(ctx, 999, "password")
	assert.ErrorIs(t, err, apperr.ErrInvalidCredentials)
}
