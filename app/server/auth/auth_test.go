package auth

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"publish-blog/app/server/apperrors"
	"publish-blog/app/server/models"
)

func testService(t *testing.T, name string) *Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewService(db)
}

func TestRegister_FirstUserIsAdmin(t *testing.T) {
	s := testService(t, "authadmin")
	ctx := context.Background()

	al, err := s.Register(ctx, "a@x.com", "pw", "Al")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if al.ID != 1 {
		t.Fatalf("expected first user id 1, got %d", al.ID)
	}
	if !s.IsAdmin(al) {
		t.Fatalf("expected first user to be admin")
	}

	bo, err := s.Register(ctx, "b@x.com", "pw", "Bo")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if bo.ID != 2 {
		t.Fatalf("expected second user id 2, got %d", bo.ID)
	}
	if s.IsAdmin(bo) {
		t.Fatalf("second user must not be admin")
	}

	// anonymous is never admin
	if s.IsAdmin(nil) {
		t.Fatalf("anonymous must not be admin")
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := testService(t, "authdup")
	ctx := context.Background()

	if _, err := s.Register(ctx, "a@x.com", "pw", "Al"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := s.Register(ctx, "a@x.com", "other", "Imposter"); !errors.Is(err, apperrors.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	// the second attempt never created a user
	var count int64
	if err := s.db.Model(&models.User{}).Count(&count).Error; err != nil || count != 1 {
		t.Fatalf("expected single user, count=%d err=%v", count, err)
	}
}

func TestRegister_RequiredFields(t *testing.T) {
	s := testService(t, "authrequired")
	ctx := context.Background()

	for _, tc := range []struct {
		email, password, name string
	}{
		{"", "pw", "Al"},
		{"a@x.com", "", "Al"},
		{"a@x.com", "pw", ""},
	} {
		if _, err := s.Register(ctx, tc.email, tc.password, tc.name); !errors.Is(err, apperrors.ErrValidation) {
			t.Fatalf("expected validation error for %+v, got %v", tc, err)
		}
	}
}

func TestLogin(t *testing.T) {
	s := testService(t, "authlogin")
	ctx := context.Background()

	registered, err := s.Register(ctx, "a@x.com", "pw", "Al")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	// correct credentials
	identity, err := s.Login(ctx, "a@x.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if identity.ID != registered.ID || identity.Email != "a@x.com" || identity.Name != "Al" {
		t.Fatalf("unexpected identity: %+v", identity)
	}

	// wrong password
	if _, err := s.Login(ctx, "a@x.com", "wrong"); !errors.Is(err, apperrors.ErrInvalidPassword) {
		t.Fatalf("expected ErrInvalidPassword, got %v", err)
	}

	// unknown email
	if _, err := s.Login(ctx, "nobody@x.com", "pw"); !errors.Is(err, apperrors.ErrUnknownEmail) {
		t.Fatalf("expected ErrUnknownEmail, got %v", err)
	}
}

func TestPasswordStoredHashed(t *testing.T) {
	s := testService(t, "authhash")
	ctx := context.Background()

	if _, err := s.Register(ctx, "a@x.com", "pw", "Al"); err != nil {
		t.Fatalf("register: %v", err)
	}

	var user models.User
	if err := s.db.First(&user, "email = ?", "a@x.com").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if user.Password == "pw" || user.Password == "" {
		t.Fatalf("password not hashed: %q", user.Password)
	}
}

func TestLookup(t *testing.T) {
	s := testService(t, "authlookup")
	ctx := context.Background()

	registered, err := s.Register(ctx, "a@x.com", "pw", "Al")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	identity, err := s.Lookup(ctx, registered.ID)
	if err != nil || identity == nil || identity.Email != "a@x.com" {
		t.Fatalf("lookup: %v %+v", err, identity)
	}

	gone, err := s.Lookup(ctx, 999)
	if err != nil || gone != nil {
		t.Fatalf("expected nil identity for unknown id, got %+v err=%v", gone, err)
	}
}
