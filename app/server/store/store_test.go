package store

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

func testDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	// shared cache so every pooled connection sees the same in-memory DB
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Sheet{}, &models.Project{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestStore_CRUD(t *testing.T) {
	db := testDB(t, "storecrud")
	ctx := context.Background()

	// create assigns an id
	sheet := models.Sheet{Title: "First", Subtitle: "sub", Date: "August 31, 2026", Body: "b", ImgURL: "http://img"}
	if err := Create(ctx, db, &sheet); err != nil {
		t.Fatalf("create: %v", err)
	}
	if sheet.ID == 0 {
		t.Fatalf("expected assigned id, got 0")
	}

	// get round trip
	got, err := Get[models.Sheet](ctx, db, sheet.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "First" || got.Subtitle != "sub" || got.Date != "August 31, 2026" {
		t.Fatalf("unexpected record: %+v", got)
	}

	// save overwrites
	got.Subtitle = "changed"
	if err := Save(ctx, db, got); err != nil {
		t.Fatalf("save: %v", err)
	}
	again, err := Get[models.Sheet](ctx, db, sheet.ID)
	if err != nil || again.Subtitle != "changed" {
		t.Fatalf("save not visible: %v %+v", err, again)
	}

	// delete
	if err := Delete[models.Sheet](ctx, db, sheet.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := Get[models.Sheet](ctx, db, sheet.ID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}
}

func TestStore_GetMissing(t *testing.T) {
	db := testDB(t, "storemissing")

	if _, err := Get[models.User](context.Background(), db, 42); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_FindOne(t *testing.T) {
	db := testDB(t, "storefindone")
	ctx := context.Background()

	user := models.User{Email: "a@x.com", Name: "Al", Password: "hash"}
	if err := Create(ctx, db, &user); err != nil {
		t.Fatalf("create: %v", err)
	}

	found, exists, err := FindOne[models.User](ctx, db, "email = ?", "a@x.com")
	if err != nil || !exists || found.ID != user.ID {
		t.Fatalf("find one: %v exists=%v %+v", err, exists, found)
	}

	_, exists, err = FindOne[models.User](ctx, db, "email = ?", "nobody@x.com")
	if err != nil || exists {
		t.Fatalf("expected absence without error, got exists=%v err=%v", exists, err)
	}
}

func TestStore_DuplicateKey(t *testing.T) {
	db := testDB(t, "storedup")
	ctx := context.Background()

	first := models.User{Email: "a@x.com", Name: "Al", Password: "hash"}
	if err := Create(ctx, db, &first); err != nil {
		t.Fatalf("create: %v", err)
	}

	second := models.User{Email: "a@x.com", Name: "Imposter", Password: "hash"}
	if err := Create(ctx, db, &second); !errors.Is(err, apperrors.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil || count != 1 {
		t.Fatalf("expected single user, count=%d err=%v", count, err)
	}
}

func TestStore_ListOrder(t *testing.T) {
	db := testDB(t, "storelist")
	ctx := context.Background()

	for _, title := range []string{"c", "a", "b"} {
		if err := Create(ctx, db, &models.Project{Title: title, Date: "August 31, 2026"}); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	projects, err := ListAll[models.Project](ctx, db)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(projects) != 3 {
		t.Fatalf("expected 3 projects, got %d", len(projects))
	}
	// id ascending, i.e. insertion order
	for i := 1; i < len(projects); i++ {
		if projects[i].ID <= projects[i-1].ID {
			t.Fatalf("list not ordered by id: %v", []string{projects[0].Title, projects[1].Title, projects[2].Title})
		}
	}
}
