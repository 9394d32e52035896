// Package auth registers and authenticates users. Session state is not kept
// here: handlers bind the returned Identity to a signed cookie, so there is
// no ambient "current user" anywhere in the process.
package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexedwards/argon2id"
	"gorm.io/gorm"

	"publish-blog/app/server/apperrors"
	"publish-blog/app/server/models"
	"publish-blog/app/server/store"
)

// AdminUserID marks the administrator: the first user ever registered.
const AdminUserID uint = 1

// Identity is the resolved actor of a request. A nil *Identity is Anonymous.
type Identity struct {
	ID    uint
	Email string
	Name  string
}

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// Register creates the user and returns its identity. The email pre-check
// gives the friendly error; the unique index backstops concurrent
// registrations with the same email.
func (s *Service) Register(ctx context.Context, email, password, name string) (*Identity, error) {
	if email == "" {
		return nil, apperrors.Validation("email", "required")
	}
	if password == "" {
		return nil, apperrors.Validation("password", "required")
	}
	if name == "" {
		return nil, apperrors.Validation("name", "required")
	}

	if _, exists, err := store.FindOne[models.User](ctx, s.db, "email = ?", email); err != nil {
		return nil, fmt.Errorf("look up email: %w", err)
	} else if exists {
		return nil, apperrors.ErrDuplicateEmail
	}

	hash, err := argon2id.CreateHash(password, argon2id.DefaultParams)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := models.User{
		Email:    email,
		Name:     name,
		Password: hash,
	}
	if err := store.Create(ctx, s.db, &user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicateEmail
		}
		return nil, err
	}

	return identityOf(&user), nil
}

// Login verifies the password hash and returns the identity.
func (s *Service) Login(ctx context.Context, email, password string) (*Identity, error) {
	user, exists, err := store.FindOne[models.User](ctx, s.db, "email = ?", email)
	if err != nil {
		return nil, fmt.Errorf("look up email: %w", err)
	}
	if !exists {
		return nil, apperrors.ErrUnknownEmail
	}

	if match, _, err := argon2id.CheckHash(password, user.Password); err != nil {
		return nil, fmt.Errorf("check password: %w", err)
	} else if !match {
		return nil, apperrors.ErrInvalidPassword
	}

	return identityOf(user), nil
}

// Lookup resolves a user id back to an identity, nil when the user is gone.
func (s *Service) Lookup(ctx context.Context, id uint) (*Identity, error) {
	user, exists, err := store.FindOne[models.User](ctx, s.db, "id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if !exists {
		return nil, nil
	}

	return identityOf(user), nil
}

// IsAdmin reports whether the identity is the administrator. Anonymous (nil)
// is never the administrator.
func (s *Service) IsAdmin(identity *Identity) bool {
	return identity != nil && identity.ID == AdminUserID
}

func identityOf(user *models.User) *Identity {
	return &Identity{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	}
}
