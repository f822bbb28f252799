package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"eventhub/internal/lib/logger/sl"
	"eventhub/internal/models"
	"eventhub/internal/storage/kv"
	"eventhub/internal/storage/mockapi"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
)

const (
	tokenKey = "auth_token"
	userKey  = "auth_user"
)

// AuthSource is the data-source slice the auth flow needs.
type AuthSource interface {
	Login(ctx context.Context, email, password string) (models.User, error)
	SignUp(ctx context.Context, email, password, name string) (models.User, error)
}

// AuthService handles login/signup against the data source and keeps the
// session token in the key-value store.
type AuthService struct {
	log      *slog.Logger
	source   AuthSource
	sessions *kv.Store
}

func NewAuthService(log *slog.Logger, source AuthSource, sessions *kv.Store) *AuthService {
	return &AuthService{
		log:      log,
		source:   source,
		sessions: sessions,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, string, error) {
	const op = "service.AuthService.Login"

	log := s.log.With(slog.String("op", op))

	user, err := s.source.Login(ctx, email, password)
	if err != nil {
		log.Error("login failed", sl.Err(err))

		switch {
		case errors.Is(err, mockapi.ErrUserNotFound):
			return models.User{}, "", ErrUserNotFound
		case errors.Is(err, mockapi.ErrInvalidCredentials):
			return models.User{}, "", ErrInvalidCredentials
		default:
			return models.User{}, "", fmt.Errorf("%s: %w", op, err)
		}
	}

	token := uuid.NewString()
	s.persistSession(user, token)

	log.Info("user logged in", slog.String("user_id", user.ID))

	return user, token, nil
}

func (s *AuthService) SignUp(ctx context.Context, email, password, name string) (models.User, string, error) {
	const op = "service.AuthService.SignUp"

	log := s.log.With(slog.String("op", op))

	user, err := s.source.SignUp(ctx, email, password, name)
	if err != nil {
		log.Error("signup failed", sl.Err(err))

		switch {
		case errors.Is(err, mockapi.ErrEmailTaken):
			return models.User{}, "", ErrEmailTaken
		case errors.Is(err, mockapi.ErrInvalidEmail), errors.Is(err, mockapi.ErrPasswordTooShort):
			return models.User{}, "", ErrInvalidInput
		default:
			return models.User{}, "", fmt.Errorf("%s: %w", op, err)
		}
	}

	token := uuid.NewString()
	s.persistSession(user, token)

	log.Info("user signed up", slog.String("user_id", user.ID))

	return user, token, nil
}

func (s *AuthService) Logout() {
	s.sessions.Remove(tokenKey)
	s.sessions.Remove(userKey)
}

// CurrentSession restores the persisted session, if any.
func (s *AuthService) CurrentSession() (models.User, string, bool) {
	token, ok := s.sessions.Get(tokenKey)
	if !ok {
		return models.User{}, "", false
	}

	raw, ok := s.sessions.Get(userKey)
	if !ok {
		return models.User{}, "", false
	}

	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.User{}, "", false
	}

	return user, string(token), true
}

func (s *AuthService) persistSession(user models.User, token string) {
	s.sessions.Set(tokenKey, []byte(token))

	if raw, err := json.Marshal(user); err == nil {
		s.sessions.Set(userKey, raw)
	}
}
