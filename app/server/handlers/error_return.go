package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"publish-blog/app/server/apperrors"
	"publish-blog/app/server/utils"
)

type errorMessage struct {
	Message *string `json:"message,omitempty"`
}

func (a *App) er(c echo.Context, statusCode int) error {
	return c.JSON(statusCode, &errorMessage{
		Message: utils.P(http.StatusText(statusCode)),
	})
}

// fail translates a service error into a response using the code it carries;
// anything unclassified is a 500 (store unavailability and the like).
func (a *App) fail(c echo.Context, err error) error {
	code := apperrors.CodeOf(err)
	if code == http.StatusInternalServerError {
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(code, &errorMessage{
		Message: utils.P(apperrors.MessageOf(err)),
	})
}
