package inits

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"publish-blog/app/server/models"
)

func DB(conn string) (db *gorm.DB, err error) {
	// open connection; TranslateError turns unique index violations into
	// gorm.ErrDuplicatedKey so uniqueness is enforced at the store level
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{TranslateError: true}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// migrate
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Sheet{},
		&models.Project{},
	)
}
