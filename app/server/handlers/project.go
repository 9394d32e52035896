package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"publish-blog/app/server/apperrors"
	"publish-blog/app/server/content"
	"publish-blog/app/server/utils"
)

type projectCreateRequest struct {
	Title string `json:"title" form:"title"`
}

type projectEditRequest struct {
	Title    string `json:"title" form:"title"`
	Blurb    string `json:"blurb" form:"blurb"`
	GitURL   string `json:"git_url" form:"git_url"`
	ImgThumb string `json:"img_thumb" form:"img_thumb"`
	Body     string `json:"body" form:"body"`
}

func (a *App) ProjectList(c echo.Context) error {
	rctx := c.Request().Context()

	projects, err := a.content.ListProjects(rctx)
	if err != nil {
		a.l.Error("failed to list projects", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &projectsVM{
		pageVM:   a.page(c, "projects"),
		Projects: projectsToVM(projects),
	})
}

func (a *App) ProjectCreate(c echo.Context) error {
	rctx := c.Request().Context()

	// bind request body
	var req projectCreateRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	project, err := a.content.CreateProject(rctx, req.Title)

	// the projects page re-renders either way, with the outcome as flash
	var flash string
	switch {
	case err == nil:
		flash = fmt.Sprintf("New Project Entry Created: %s", project.Title)
	case errors.Is(err, apperrors.ErrDuplicateTitle), errors.Is(err, apperrors.ErrValidation):
		flash = apperrors.MessageOf(err)
	default:
		a.l.Error("failed to create project", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	projects, err := a.content.ListProjects(rctx)
	if err != nil {
		a.l.Error("failed to list projects", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	vm := &projectsVM{
		pageVM:   a.page(c, "projects"),
		Projects: projectsToVM(projects),
	}
	vm.Flash = utils.P(flash)
	return c.JSON(http.StatusOK, vm)
}

func (a *App) ProjectShow(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	project, err := a.content.GetProject(rctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			a.l.Error("failed to get project", zap.Uint("id", id), zap.Error(err))
		}
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &projectPageVM{
		pageVM:  a.page(c, "project"),
		Project: projectToVM(project),
	})
}

func (a *App) ProjectEditPage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	project, err := a.content.GetProject(rctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			a.l.Error("failed to get project", zap.Uint("id", id), zap.Error(err))
		}
		return a.fail(c, err)
	}

	// form pre-filled with the current record
	return c.JSON(http.StatusOK, &projectFormVM{
		pageVM: a.page(c, "edit-project"),
		Form:   projectToVM(project),
	})
}

func (a *App) ProjectEditSubmit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// bind request body
	var req projectEditRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	project, err := a.content.UpdateProject(rctx, id, content.ProjectInput{
		Title:    req.Title,
		Blurb:    req.Blurb,
		GitURL:   req.GitURL,
		ImgThumb: req.ImgThumb,
		Body:     req.Body,
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			return a.fail(c, err)
		case errors.Is(err, apperrors.ErrDuplicateTitle), errors.Is(err, apperrors.ErrValidation):
			// re-render the form with the submitted values and the message
			vm := &projectFormVM{
				pageVM: a.page(c, "edit-project"),
				Form: projectVM{
					ID:       id,
					Title:    req.Title,
					Blurb:    req.Blurb,
					ImgThumb: req.ImgThumb,
					Body:     req.Body,
				},
			}
			if req.GitURL != "" {
				vm.Form.GitURL = utils.P(req.GitURL)
			}
			vm.Flash = utils.P(apperrors.MessageOf(err))
			return c.JSON(http.StatusOK, vm)
		default:
			a.l.Error("failed to update project", zap.Uint("id", id), zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	a.setFlash(c, "Project Updated")
	return c.Redirect(http.StatusFound, fmt.Sprintf("/project/%d", project.ID))
}
