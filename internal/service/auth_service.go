package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"bizdesk/internal/auth"
	"bizdesk/internal/repository"
)

// ErrAuthentication is returned for any failed login. The message is
// deliberately generic: an unknown name, an ambiguous name and a wrong
// password are indistinguishable to the caller.
var ErrAuthentication = errors.New("invalid name or password")

// AuthService handles the session lifecycle.
type AuthService interface {
	Login(ctx context.Context, name, password string) (token string, sess *auth.Session, err error)
	Logout(ctx context.Context, token string) error
	CurrentSession(ctx context.Context, sessionID string) (*auth.Session, error)
}

type authService struct {
	userRepo     repository.UserRepository
	jwtService   *auth.JWTService
	sessionStore auth.SessionStoreInterface
	sessionTTL   time.Duration
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, jwtService *auth.JWTService, sessionStore auth.SessionStoreInterface, sessionTTL time.Duration) AuthService {
	return &authService{
		userRepo:     userRepo,
		jwtService:   jwtService,
		sessionStore: sessionStore,
		sessionTTL:   sessionTTL,
	}
}

// Login looks the user up by name in the directory and verifies the password.
// Zero or multiple matches fail the same way as a wrong password. On success
// the full user record is persisted as the session before the token is
// handed back, so observers never see a token without a stored session.
func (s *authService) Login(ctx context.Context, name, password string) (string, *auth.Session, error) {
	users, err := s.userRepo.FindAllByName(ctx, name)
	if err != nil {
		return "", nil, fmt.Errorf("directory lookup: %w", err)
	}
	if len(users) != 1 {
		return "", nil, ErrAuthentication
	}
	user := users[0]

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrAuthentication
	}

	sess := &auth.Session{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       user.Role,
		Name:       user.Name,
		Department: user.Department,
		Phone:      user.Phone,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}

	sessionID, token, err := s.jwtService.GenerateSessionToken(user.ID, user.Name, user.Role, s.sessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("generate session token: %w", err)
	}

	if err := s.sessionStore.Save(ctx, sessionID, sess, s.sessionTTL); err != nil {
		return "", nil, fmt.Errorf("store session: %w", err)
	}

	return token, sess, nil
}

// Logout removes the stored session record. It is idempotent: an invalid or
// already logged-out token is not an error.
func (s *authService) Logout(ctx context.Context, token string) error {
	sessionID, err := s.jwtService.ExtractSessionID(token)
	if err != nil {
		return nil
	}
	return s.sessionStore.Delete(ctx, sessionID)
}

// CurrentSession restores the session record for a session ID.
func (s *authService) CurrentSession(ctx context.Context, sessionID string) (*auth.Session, error) {
	return s.sessionStore.Restore(ctx, sessionID)
}
