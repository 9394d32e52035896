package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (a *App) Home(c echo.Context) error {
	rctx := c.Request().Context()

	projects, err := a.content.ListProjects(rctx)
	if err != nil {
		a.l.Error("failed to list projects", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	sheets, err := a.content.ListSheets(rctx)
	if err != nil {
		a.l.Error("failed to list sheets", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, &homeVM{
		pageVM:   a.page(c, "home"),
		Projects: projectsToVM(projects),
		Sheets:   sheetsToVM(sheets),
	})
}

func (a *App) About(c echo.Context) error {
	return c.JSON(http.StatusOK, a.page(c, "about"))
}

func (a *App) Contact(c echo.Context) error {
	return c.JSON(http.StatusOK, a.page(c, "contact"))
}

func (a *App) Resume(c echo.Context) error {
	return c.JSON(http.StatusOK, a.page(c, "resume"))
}

func (a *App) HealthCheck(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}
