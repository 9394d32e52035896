package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"publish-blog/app/server/apperrors"
	"publish-blog/app/server/utils"
)

type registerRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

func (a *App) RegisterPage(c echo.Context) error {
	return c.JSON(http.StatusOK, &registerFormVM{
		pageVM: a.page(c, "register"),
	})
}

func (a *App) RegisterSubmit(c echo.Context) error {
	rctx := c.Request().Context()

	// bind request body
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	identity, err := a.auth.Register(rctx, req.Email, req.Password, req.Name)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicateEmail):
			// the email already has an account, send the visitor to login
			a.setFlash(c, apperrors.MessageOf(err))
			return c.Redirect(http.StatusFound, "/login")
		case errors.Is(err, apperrors.ErrValidation):
			vm := &registerFormVM{
				pageVM: a.page(c, "register"),
				Email:  req.Email,
				Name:   req.Name,
			}
			vm.Flash = utils.P(apperrors.MessageOf(err))
			return c.JSON(http.StatusOK, vm)
		default:
			a.l.Error("failed to register user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	// auto-login the fresh account
	if err := a.establishSession(c, identity); err != nil {
		a.l.Error("failed to establish session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusFound, "/sheets")
}

func (a *App) LoginPage(c echo.Context) error {
	return c.JSON(http.StatusOK, &loginFormVM{
		pageVM: a.page(c, "login"),
	})
}

func (a *App) LoginSubmit(c echo.Context) error {
	rctx := c.Request().Context()

	// bind request body
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		a.l.Error("failed to bind request", zap.Error(err))
		return a.er(c, http.StatusBadRequest)
	}

	identity, err := a.auth.Login(rctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUnknownEmail), errors.Is(err, apperrors.ErrInvalidPassword):
			// re-render the form with the message
			vm := &loginFormVM{
				pageVM: a.page(c, "login"),
				Email:  req.Email,
			}
			vm.Flash = utils.P(apperrors.MessageOf(err))
			return c.JSON(http.StatusOK, vm)
		default:
			a.l.Error("failed to log in user", zap.Error(err))
			return a.er(c, http.StatusInternalServerError)
		}
	}

	if err := a.establishSession(c, identity); err != nil {
		a.l.Error("failed to establish session", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.Redirect(http.StatusFound, "/sheets")
}

func (a *App) Logout(c echo.Context) error {
	a.clearSession(c)
	return c.Redirect(http.StatusFound, "/sheets")
}
