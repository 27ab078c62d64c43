package userapp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"postboard/internal/core/activity"
	"postboard/internal/core/apperr"
	"postboard/internal/core/audit"
	userEntity "postboard/internal/core/user"
	"postboard/internal/core/validation"
	activityPort "postboard/internal/ports/activity"
	postPort "postboard/internal/ports/post"
	"postboard/internal/ports/transaction"
	userPort "postboard/internal/ports/user"

	"github.com/dgrijalva/jwt-go"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const (
	TokenIssuer = "postboard"
	TokenTTL    = 24 * time.Hour
)

// UserService سرویس مدیریت کاربران
type UserService struct {
	UserRepository     userPort.UserRepository
	PostRepository     postPort.PostRepository // پست‌های کاربر از روی user_id خوانده می‌شوند
	ActivityRepository activityPort.ActivityRepository
	Transactor         transaction.Transactor
	Logger             *zap.Logger
	Now                func() time.Time
	jwtKey             []byte
}

func NewUserService(
	userRepo userPort.UserRepository,
	postRepo postPort.PostRepository,
	activityRepo activityPort.ActivityRepository,
	tx transaction.Transactor,
	logger *zap.Logger,
	jwtKey []byte,
) *UserService {
	return &UserService{
		UserRepository:     userRepo,
		PostRepository:     postRepo,
		ActivityRepository: activityRepo,
		Transactor:         tx,
		Logger:             logger,
		Now:                time.Now,
		jwtKey:             jwtKey,
	}
}

// Save ثبت کاربر جدید
func (s *UserService) Save(ctx context.Context, req userPort.SaveUserRequest) (uint64, error) {
	if err := validation.Struct(req); err != nil {
		return 0, err
	}

	user := &userEntity.User{
		Name:   req.Name,
		Age:    req.Age,
		Hobby:  req.Hobby,
		Fields: audit.Created(0, s.Now()),
	}

	// هش کردن پسورد
	if req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return 0, fmt.Errorf("hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	u, err := s.UserRepository.Create(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("save user: %w", err)
	}

	s.Logger.Info("✅ Created user", zap.Uint64("userID", u.ID))
	return u.ID, nil
}

// Find returns the user together with the posts it owns, oldest first.
func (s *UserService) Find(ctx context.Context, userID uint64) (*userPort.UserDTO, error) {
	var dto *userPort.UserDTO
	err := s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		u, err := s.UserRepository.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		posts, err := s.PostRepository.FindByUserID(ctx, u.ID)
		if err != nil {
			return err
		}
		for _, p := range posts {
			p.AssignTo(u)
		}

		dto = &userPort.UserDTO{
			ID:    u.ID,
			Name:  u.Name,
			Age:   u.Age,
			Hobby: u.Hobby,
			Posts: postPort.ToDTOs(posts),
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return dto, nil
}

// Delete removes the user and every post it owns in one transaction.
func (s *UserService) Delete(ctx context.Context, userID uint64) error {
	var removed int
	err := s.Transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		u, err := s.UserRepository.FindByID(ctx, userID)
		if err != nil {
			return err
		}
		posts, err := s.PostRepository.FindByUserID(ctx, u.ID)
		if err != nil {
			return err
		}
		for _, p := range posts {
			if err := s.PostRepository.Delete(ctx, p); err != nil {
				return err
			}
			if _, err := s.ActivityRepository.Create(ctx, activity.New(activity.PostDeleted, p.ID, u.ID, p.CreatedAt)); err != nil {
				return err
			}
		}
		removed = len(posts)
		return s.UserRepository.Delete(ctx, u)
	})
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.Logger.Info("🗑️ Deleted user", zap.Uint64("userID", userID), zap.Int("posts", removed))
	return nil
}

// Login ورود کاربر و صدور توکن JWT
func (s *UserService) Login(ctx context.Context, userID uint64, password string) (*userPort.LoginResponse, error) {
	user, err := s.UserRepository.FindByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperr.ErrNotFound) {
			return nil, fmt.Errorf("login: %w", err)
		}
		s.Logger.Info("login for unknown user", zap.Uint64("userID", userID))
		return nil, apperr.ErrInvalidCredentials
	}
	if !user.CanLogin() {
		return nil, apperr.ErrInvalidCredentials
	}

	// مقایسه پسورد هش‌شده
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.Logger.Info("invalid password", zap.Uint64("userID", userID))
		return nil, apperr.ErrInvalidCredentials
	}

	expiresAt := s.Now().Add(TokenTTL)
	token, err := s.generateJWT(user, expiresAt)
	if err != nil {
		return nil, fmt.Errorf("could not generate token: %w", err)
	}

	return &userPort.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

// generateJWT برای تولید توکن JWT
func (s *UserService) generateJWT(user *userEntity.User, expiresAt time.Time) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   strconv.FormatUint(user.ID, 10),
		Issuer:    TokenIssuer,
		IssuedAt:  s.Now().Unix(),
		ExpiresAt: expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}
