package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tiendaweb/tienda/internal/hash"
	"github.com/tiendaweb/tienda/internal/logging"
	"github.com/tiendaweb/tienda/internal/models"
	"github.com/tiendaweb/tienda/internal/mykafka"
	"github.com/tiendaweb/tienda/internal/repo"
	"github.com/tiendaweb/tienda/internal/tokens"
)

var (
	ErrValidation         = errors.New("validation")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type AuthService struct {
	Repo          *repo.GormRepo
	SessionSecret []byte
	Producer      *mykafka.Producer
}

type LoginResult struct {
	Token      string
	SessionExp time.Time
	User       *models.User
}

// Register creates a new user. The raw password is hashed before it ever
// reaches the store and is not logged. Registration does not log the user in.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	l := logging.FromContext(ctx).With("svc", "auth.register")

	if name == "" || email == "" || password == "" {
		return nil, fmt.Errorf("name, email and password are required: %w", ErrValidation)
	}

	pwHash, err := hash.HashPassword(password)
	if err != nil {
		l.Error("register_error", "reason", "cannot hash the password", "error", err)
		return nil, err
	}

	user := models.User{
		Name:         name,
		Email:        email,
		PasswordHash: pwHash,
	}

	if err := s.Repo.CreateUser(ctx, &user); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			l.Warn("register_conflict", "email", email)
			return nil, ErrDuplicateEmail
		}
		l.Error("register_error", "error", err)
		return nil, err
	}

	s.publish(ctx, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":   "user_registered",
		"userID": user.ID,
		"email":  user.Email,
	})

	l.Info("user registered", "user_id", user.ID)
	return &user, nil
}

// Login verifies the credentials and issues a signed session token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	l := logging.FromContext(ctx).With("svc", "auth.login")

	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required: %w", ErrValidation)
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			l.Warn("login_failed", "reason", "unknown email")
			return nil, ErrInvalidCredentials
		}
		l.Error("login_error", "error", err)
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		l.Warn("login_failed", "reason", "bad password")
		return nil, ErrInvalidCredentials
	}

	exp := time.Now().Add(tokens.SessionTTL)
	token, err := tokens.SignSession(user.ID, s.SessionSecret, exp)
	if err != nil {
		l.Error("login_error", "error", err)
		return nil, err
	}

	s.publish(ctx, "user_events", fmt.Sprint(user.ID), map[string]any{
		"type":   "user_logged_in",
		"userID": user.ID,
		"email":  user.Email,
	})

	l.Info("user logged in", "user_id", user.ID)
	return &LoginResult{Token: token, SessionExp: exp, User: user}, nil
}

// CurrentUser resolves a session subject back to its full user row. It hits
// the store on every call so a deleted or changed user is reflected
// immediately.
func (s *AuthService) CurrentUser(ctx context.Context, userID uint) (*models.User, error) {
	user, err := s.Repo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) publish(ctx context.Context, topic, key string, event map[string]any) {
	if s.Producer == nil {
		return
	}
	pubCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Producer.PublishEvent(pubCtx, topic, key, event); err != nil {
		logging.FromContext(ctx).Error("kafka publish error", "topic", topic, "error", err)
	}
}
