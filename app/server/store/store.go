// Package store wraps gorm with the generic record operations the services
// are written against. Every mutating call is its own transaction and hits
// durable storage before returning.
package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"publish-blog/app/server/apperrors"
	"publish-blog/app/server/models"
)

// Record constrains the helpers to the persisted tables. Methods cannot have
// type parameters, so these are free functions taking the db handle.
type Record interface {
	models.User | models.Sheet | models.Project
}

// Get loads one record by id, apperrors.ErrNotFound when it does not exist.
func Get[M Record](ctx context.Context, db *gorm.DB, id uint) (*M, error) {
	var record M
	if err := db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("get record %d: %w", id, err)
	}

	return &record, nil
}

// FindOne loads the first record matching the query, reporting absence
// through the bool rather than an error.
func FindOne[M Record](ctx context.Context, db *gorm.DB, query string, args ...interface{}) (*M, bool, error) {
	var record M
	if err := db.WithContext(ctx).First(&record, append([]interface{}{query}, args...)...).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("find record: %w", err)
	}

	return &record, true, nil
}

// ListAll returns every record, id ascending.
func ListAll[M Record](ctx context.Context, db *gorm.DB) ([]M, error) {
	var records []M
	if err := db.WithContext(ctx).Order("id ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return records, nil
}

// Create inserts the record and backfills its generated id. Unique index
// violations come back as apperrors.ErrDuplicate.
func Create[M Record](ctx context.Context, db *gorm.DB, record *M) error {
	if err := db.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("create record: %w", err)
	}

	return nil
}

// Save writes back every field of a previously loaded record.
func Save[M Record](ctx context.Context, db *gorm.DB, record *M) error {
	if err := db.WithContext(ctx).Save(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("save record: %w", err)
	}

	return nil
}

// Delete removes the record by id. Unscoped makes it a hard delete: the
// models embed gorm.Model, and a soft-deleted row would keep occupying the
// unique indexes, blocking re-creation under the same title or email.
func Delete[M Record](ctx context.Context, db *gorm.DB, id uint) error {
	var record M
	if err := db.WithContext(ctx).Unscoped().Delete(&record, id).Error; err != nil {
		return fmt.Errorf("delete record %d: %w", id, err)
	}

	return nil
}
