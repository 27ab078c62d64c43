package httpapi

import (
	"context"

	"postboard/internal/adapters/httpapi/middleware"
	"postboard/internal/core/page"
	postPort "postboard/internal/ports/post"
	userPort "postboard/internal/ports/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserUseCase: اینترفیسِ لازم برای کنترلر/روتر (Inbound Port)
type UserUseCase interface {
	Save(ctx context.Context, req userPort.SaveUserRequest) (uint64, error)
	Find(ctx context.Context, userID uint64) (*userPort.UserDTO, error)
	Delete(ctx context.Context, userID uint64) error
	Login(ctx context.Context, userID uint64, password string) (*userPort.LoginResponse, error)
}

type PostUseCase interface {
	Save(ctx context.Context, actingUserID uint64, req postPort.PostRequest) (uint64, error)
	Find(ctx context.Context, postID uint64) (*postPort.PostDTO, error)
	FindAll(ctx context.Context, req page.Request) (page.Page[*postPort.PostDTO], error)
	Update(ctx context.Context, postID, actingUserID uint64, req postPort.PostRequest) error
	Delete(ctx context.Context, postID, actingUserID uint64) error
}

type FeedUseCase interface {
	Recent(ctx context.Context, start, limit int64) ([]*postPort.PostDTO, error)
}

// فقط روتینگ: UseCase از بیرون تزریق می‌شود
func SetupRoutes(
	userUC UserUseCase,
	postUC PostUseCase,
	feedUC FeedUseCase,
	jwtSecret []byte,
	logger *zap.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(logger))

	uc := NewUserController(userUC, logger)
	pc := NewPostController(postUC, logger)
	fc := NewFeedController(feedUC, logger)
	auth := middleware.JWTAuthMiddleware(jwtSecret)

	// مسیرهای ثبت‌نام و ورود بدون JWT Middleware
	r.POST("/users", uc.RegisterUser)
	r.POST("/login", uc.LoginUser)
	r.GET("/users/:id", uc.GetUser)
	r.DELETE("/users/me", auth, uc.DeleteMe)

	// خواندن پست‌ها آزاد است، تغییر آن‌ها نیاز به JWT دارد
	r.GET("/posts", pc.ListPosts)
	r.GET("/posts/:id", pc.GetPost)
	r.POST("/posts", auth, pc.CreatePost)
	r.PUT("/posts/:id", auth, pc.UpdatePost)
	r.DELETE("/posts/:id", auth, pc.DeletePost)

	r.GET("/feed", fc.GetRecent)
	return r
}
