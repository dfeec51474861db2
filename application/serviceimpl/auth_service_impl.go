package serviceimpl

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"deskhub/domain/dto"
	"deskhub/domain/models"
	"deskhub/domain/ports"
	"deskhub/domain/repositories"
	"deskhub/domain/services"
	"deskhub/pkg/apperrors"
	"deskhub/pkg/logger"
)

type authServiceImpl struct {
	userRepo   repositories.UserRepository
	sessions   ports.SessionStore
	secret     []byte
	sessionTTL time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessions ports.SessionStore,
	secret string,
	sessionTTL time.Duration,
) services.AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		sessions:   sessions,
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
	}
}

type sessionClaims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	exists, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.Conflict("email")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         strings.TrimSpace(req.Name),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "User registered", "email", email)

	return dto.ToUserResponse(user), nil
}

func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.UserResponse, string, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	if err := s.sessions.Create(ctx, sessionID, user.ID.String(), s.sessionTTL); err != nil {
		return nil, "", err
	}

	now := time.Now()
	claims := sessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, "", err
	}

	logger.InfoContext(ctx, "User logged in", "email", email)

	return dto.ToUserResponse(user), token, nil
}

func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	claims, err := s.parseToken(token)
	if err != nil {
		// An unparsable cookie has no session to revoke.
		return nil
	}
	return s.sessions.Delete(ctx, claims.SessionID)
}

func (s *authServiceImpl) CurrentUser(ctx context.Context, token string) (*dto.UserResponse, error) {
	claims, err := s.parseToken(token)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	userID, err := s.sessions.Get(ctx, claims.SessionID)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, apperrors.ErrUnauthenticated
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, err
	}

	return dto.ToUserResponse(user), nil
}

func (s *authServiceImpl) parseToken(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, fmt.Errorf("token is not valid")
	}
	return claims, nil
}
