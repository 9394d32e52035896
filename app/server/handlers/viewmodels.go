package handlers

import (
	"github.com/labstack/echo/v4"

	"publish-blog/app/server/auth"
	"publish-blog/app/server/models"
	"publish-blog/app/server/utils"
)

// View models are what the external template layer renders. Each page carries
// the resolved identity and any pending flash message.

type userVM struct {
	ID      uint   `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"is_admin"`
}

type sheetVM struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Date     string `json:"date"`
	Body     string `json:"body"`
	ImgURL   string `json:"img_url"`
}

type projectVM struct {
	ID       uint    `json:"id"`
	Title    string  `json:"title"`
	GitURL   *string `json:"git_url,omitempty"`
	Blurb    string  `json:"blurb,omitempty"`
	Date     string  `json:"date"`
	Body     string  `json:"body,omitempty"`
	ImgThumb string  `json:"img_thumb,omitempty"`
}

type pageVM struct {
	Page  string  `json:"page"`
	User  *userVM `json:"user,omitempty"`
	Flash *string `json:"flash,omitempty"`
}

type homeVM struct {
	pageVM
	Projects []projectVM `json:"projects"`
	Sheets   []sheetVM   `json:"sheets"`
}

type sheetsVM struct {
	pageVM
	Sheets []sheetVM `json:"sheets"`
}

type sheetPageVM struct {
	pageVM
	Sheet sheetVM `json:"sheet"`
}

type sheetFormVM struct {
	pageVM
	IsEdit bool    `json:"is_edit"`
	Form   sheetVM `json:"form"`
}

type projectsVM struct {
	pageVM
	Projects []projectVM `json:"projects"`
}

type projectPageVM struct {
	pageVM
	Project projectVM `json:"project"`
}

type projectFormVM struct {
	pageVM
	Form projectVM `json:"form"`
}

type registerFormVM struct {
	pageVM
	Email string `json:"email,omitempty"`
	Name  string `json:"name,omitempty"`
}

type loginFormVM struct {
	pageVM
	Email string `json:"email,omitempty"`
}

// page builds the common envelope: resolve identity, drain the flash cookie.
func (a *App) page(c echo.Context, name string) pageVM {
	vm := pageVM{Page: name}

	vm.User = a.identityToVM(a.currentIdentity(c))

	if flash := a.takeFlash(c); flash != "" {
		vm.Flash = utils.P(flash)
	}

	return vm
}

func sheetToVM(sheet *models.Sheet) sheetVM {
	return sheetVM{
		ID:       sheet.ID,
		Title:    sheet.Title,
		Subtitle: sheet.Subtitle,
		Date:     sheet.Date,
		Body:     sheet.Body,
		ImgURL:   sheet.ImgURL,
	}
}

func projectToVM(project *models.Project) projectVM {
	return projectVM{
		ID:       project.ID,
		Title:    project.Title,
		GitURL:   project.GitURL,
		Blurb:    project.Blurb,
		Date:     project.Date,
		Body:     project.Body,
		ImgThumb: project.ImgThumb,
	}
}

func sheetsToVM(sheets []models.Sheet) []sheetVM {
	vms := []sheetVM{}
	for i := range sheets {
		vms = append(vms, sheetToVM(&sheets[i]))
	}
	return vms
}

func projectsToVM(projects []models.Project) []projectVM {
	vms := []projectVM{}
	for i := range projects {
		vms = append(vms, projectToVM(&projects[i]))
	}
	return vms
}

func (a *App) identityToVM(identity *auth.Identity) *userVM {
	if identity == nil {
		return nil
	}

	return &userVM{
		ID:      identity.ID,
		Email:   identity.Email,
		Name:    identity.Name,
		IsAdmin: a.auth.IsAdmin(identity),
	}
}
