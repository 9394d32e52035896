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

type sheetRequest struct {
	Title    string `json:"title" form:"title"`
	Subtitle string `json:"subtitle" form:"subtitle"`
	Body     string `json:"body" form:"body"`
	ImgURL   string `json:"img_url" form:"img_url"`
}

func (r *sheetRequest) toInput() content.SheetInput {
	return content.SheetInput{
		Title:    r.Title,
		Subtitle: r.Subtitle,
		Body:     r.Body,
		ImgURL:   r.ImgURL,
	}
}

func (a *App) SheetList(c echo.Context) error {
	rctx := c.Request().Context()

	sheets, err := a.content.ListSheets(rctx)
	if err != nil {
		a.l.Error("failed to list sheets", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &sheetsVM{
		pageVM: a.page(c, "sheets"),
		Sheets: sheetsToVM(sheets),
	})
}

func (a *App) SheetShow(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	sheet, err := a.content.GetSheet(rctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			a.l.Error("failed to get sheet", zap.Uint("id", id), zap.Error(err))
		}
		return a.fail(c, err)
	}

	return c.JSON(http.StatusOK, &sheetPageVM{
		pageVM: a.page(c, "sheet"),
		Sheet:  sheetToVM(sheet),
	})
}

func (a *App) SheetNewPage(c echo.Context) error {
	// admin guard (authorization)
	if _, err, statusCode := a.requireAdmin(c); err != nil {
		a.l.Warn("refused sheet form", zap.Error(err))
		return a.er(c, statusCode)
	}

	return c.JSON(http.StatusOK, &sheetFormVM{
		pageVM: a.page(c, "make-sheet"),
	})
}

func (a *App) SheetCreate(c echo.Context) error {
	// admin guard (authorization), before any mutation
	if _, err, statusCode := a.requireAdmin(c); err != nil {
		a.l.Warn("refused sheet create", zap.Error(err))
		return a.er(c, statusCode)
	}

	rctx := c.Request().Context()

	// bind request body
	var req sheetRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	if _, err := a.content.CreateSheet(rctx, req.toInput()); err != nil {
		return a.sheetFormError(c, err, false, &req)
	}

	return c.Redirect(http.StatusFound, "/sheets")
}

func (a *App) SheetEditPage(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	sheet, err := a.content.GetSheet(rctx, id)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			a.l.Error("failed to get sheet", zap.Uint("id", id), zap.Error(err))
		}
		return a.fail(c, err)
	}

	// form pre-filled with the current record
	return c.JSON(http.StatusOK, &sheetFormVM{
		pageVM: a.page(c, "make-sheet"),
		IsEdit: true,
		Form:   sheetToVM(sheet),
	})
}

func (a *App) SheetEditSubmit(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	// bind request body
	var req sheetRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	sheet, err := a.content.UpdateSheet(rctx, id, req.toInput())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return a.fail(c, err)
		}
		return a.sheetFormError(c, err, true, &req)
	}

	return c.Redirect(http.StatusFound, fmt.Sprintf("/sheet/%d", sheet.ID))
}

func (a *App) SheetDelete(c echo.Context) error {
	// admin guard (authorization), before any mutation
	if _, err, statusCode := a.requireAdmin(c); err != nil {
		a.l.Warn("refused sheet delete", zap.Error(err))
		return a.er(c, statusCode)
	}

	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	rctx := c.Request().Context()

	if err := a.content.DeleteSheet(rctx, id); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			a.l.Error("failed to delete sheet", zap.Uint("id", id), zap.Error(err))
		}
		return a.fail(c, err)
	}

	return c.Redirect(http.StatusFound, "/sheets")
}

// sheetFormError re-renders the sheet form with a user-visible message for
// duplicate titles and field validation, 500 for everything else.
func (a *App) sheetFormError(c echo.Context, err error, isEdit bool, req *sheetRequest) error {
	switch {
	case errors.Is(err, apperrors.ErrDuplicateTitle), errors.Is(err, apperrors.ErrValidation):
		vm := &sheetFormVM{
			pageVM: a.page(c, "make-sheet"),
			IsEdit: isEdit,
			Form: sheetVM{
				Title:    req.Title,
				Subtitle: req.Subtitle,
				Body:     req.Body,
				ImgURL:   req.ImgURL,
			},
		}
		vm.Flash = utils.P(apperrors.MessageOf(err))
		return c.JSON(http.StatusOK, vm)
	default:
		a.l.Error("failed to save sheet", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}
}
