package handlers

import (
	"github.com/labstack/echo/v4"
)

// RegisterRoutes binds every route to the app. Gated handlers run the admin
// guard themselves, so authorization stays visible at the handler.
func RegisterRoutes(e *echo.Echo, a *App) {
	e.GET("/healthz", a.HealthCheck)

	// auth
	e.GET("/register", a.RegisterPage)
	e.POST("/register", a.RegisterSubmit)
	e.GET("/login", a.LoginPage)
	e.POST("/login", a.LoginSubmit)
	e.GET("/logout", a.Logout)

	// pages
	e.GET("/", a.Home)
	e.GET("/about", a.About)
	e.GET("/contact", a.Contact)
	e.GET("/resume", a.Resume)

	// sheets
	e.GET("/sheets", a.SheetList)
	e.GET("/sheet/:id", a.SheetShow)
	e.GET("/new-sheet", a.SheetNewPage)    // admin only
	e.POST("/new-sheet", a.SheetCreate)    // admin only
	e.GET("/edit-sheet/:id", a.SheetEditPage)
	e.POST("/edit-sheet/:id", a.SheetEditSubmit)
	e.GET("/delete/:id", a.SheetDelete) // admin only

	// projects
	e.GET("/projects", a.ProjectList)
	e.POST("/projects", a.ProjectCreate)
	e.GET("/project/:id", a.ProjectShow)
	e.GET("/edit-project/:id", a.ProjectEditPage)
	e.POST("/edit-project/:id", a.ProjectEditSubmit)
}
