// Package content holds the sheet (blog post) and project (portfolio entry)
// operations. Authorization is the caller's job: handlers run the admin guard
// before touching the gated operations.
package content

import (
	"context"
	"errors"
	"net/url"
	"time"

	"gorm.io/gorm"

	"publish-blog/app/server/apperrors"
	"publish-blog/app/server/constants"
	"publish-blog/app/server/models"
	"publish-blog/app/server/store"
)

type Service struct {
	db *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db}
}

// SheetInput carries the editable sheet fields. Date is stamped at creation
// and never rewritten.
type SheetInput struct {
	Title    string
	Subtitle string
	Body     string
	ImgURL   string
}

// ProjectInput carries the editable project fields.
type ProjectInput struct {
	Title    string
	Blurb    string
	GitURL   string
	ImgThumb string
	Body     string
}

func (s *Service) ListSheets(ctx context.Context) ([]models.Sheet, error) {
	return store.ListAll[models.Sheet](ctx, s.db)
}

func (s *Service) GetSheet(ctx context.Context, id uint) (*models.Sheet, error) {
	return store.Get[models.Sheet](ctx, s.db, id)
}

func (s *Service) CreateSheet(ctx context.Context, in SheetInput) (*models.Sheet, error) {
	if err := validateSheet(in); err != nil {
		return nil, err
	}

	sheet := models.Sheet{
		Title:    in.Title,
		Subtitle: in.Subtitle,
		Body:     in.Body,
		ImgURL:   in.ImgURL,
		Date:     dateStamp(),
	}
	if err := store.Create(ctx, s.db, &sheet); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicateTitle
		}
		return nil, err
	}

	return &sheet, nil
}

func (s *Service) UpdateSheet(ctx context.Context, id uint, in SheetInput) (*models.Sheet, error) {
	sheet, err := store.Get[models.Sheet](ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	if err := validateSheet(in); err != nil {
		return nil, err
	}

	// overwrite everything except the creation date
	sheet.Title = in.Title
	sheet.Subtitle = in.Subtitle
	sheet.Body = in.Body
	sheet.ImgURL = in.ImgURL

	if err := store.Save(ctx, s.db, sheet); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicateTitle
		}
		return nil, err
	}

	return sheet, nil
}

func (s *Service) DeleteSheet(ctx context.Context, id uint) error {
	// load first so a missing id reports 404 instead of silently succeeding
	if _, err := store.Get[models.Sheet](ctx, s.db, id); err != nil {
		return err
	}

	return store.Delete[models.Sheet](ctx, s.db, id)
}

func (s *Service) ListProjects(ctx context.Context) ([]models.Project, error) {
	return store.ListAll[models.Project](ctx, s.db)
}

func (s *Service) GetProject(ctx context.Context, id uint) (*models.Project, error) {
	return store.Get[models.Project](ctx, s.db, id)
}

// CreateProject opens a bare entry from just a title; the rest of the fields
// arrive through UpdateProject.
func (s *Service) CreateProject(ctx context.Context, title string) (*models.Project, error) {
	if title == "" {
		return nil, apperrors.Validation("title", "required")
	}

	project := models.Project{
		Title: title,
		Date:  dateStamp(),
	}
	if err := store.Create(ctx, s.db, &project); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.ErrDuplicateTitle
		}
		return nil, err
	}

	return &project, nil
}

func (s *Service) UpdateProject(ctx context.Context, id uint, in ProjectInput) (*models.Project, error) {
	project, err := store.Get[models.Project](ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	if in.Title == "" {
		return nil, apperrors.Validation("title", "required")
	}
	if in.GitURL != "" {
		if u, err := url.Parse(in.GitURL); err != nil || u.Scheme == "" || u.Host == "" {
			return nil, apperrors.Validation("git_url", "must be a well-formed URL")
		}
	}

	project.Title = in.Title
	project.Blurb = in.Blurb
	project.ImgThumb = in.ImgThumb
	project.Body = in.Body
	if in.GitURL == "" {
		project.GitURL = nil
	} else {
		project.GitURL = &in.GitURL
	}

	if err := store.Save(ctx, s.db, project); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			// title and git_url both carry unique indexes, name the one that collided
			if _, taken, lookupErr := store.FindOne[models.Project](ctx, s.db, "title = ? AND id <> ?", in.Title, id); lookupErr == nil && taken {
				return nil, apperrors.ErrDuplicateTitle
			}
			return nil, apperrors.Validation("git_url", "already used by another project")
		}
		return nil, err
	}

	return project, nil
}

func validateSheet(in SheetInput) error {
	switch {
	case in.Title == "":
		return apperrors.Validation("title", "required")
	case in.Subtitle == "":
		return apperrors.Validation("subtitle", "required")
	case in.Body == "":
		return apperrors.Validation("body", "required")
	case in.ImgURL == "":
		return apperrors.Validation("img_url", "required")
	}

	return nil
}

func dateStamp() string {
	return time.Now().Format(constants.DateStampLayout)
}
