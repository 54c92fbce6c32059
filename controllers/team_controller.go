package controllers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/services"
	"github.com/footyhub/footyhub/userctx"
)

const foundedMessage = "Founded should be a valid number between 1500 and 2024"

// TeamController handles the team catalog
type TeamController struct {
	services *services.Services
}

// NewTeamController creates a new team controller
func NewTeamController(services *services.Services) *TeamController {
	return &TeamController{
		services: services,
	}
}

type teamFormData struct {
	Page
	Team *models.Team
	Form *models.TeamForm
}

// AddPage handles GET /add
func (c *TeamController) AddPage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, "add.html", teamFormData{
		Page: newPage(r, "Add team", "add"),
		Form: &models.TeamForm{},
	})
}

// Add handles POST /add
func (c *TeamController) Add(w http.ResponseWriter, r *http.Request) {
	form, err := parseTeamForm(r)
	if err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	if _, err := c.services.Team.Create(r.Context(), form); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			serverError(w, r, err, "failed to create team")
			return
		}

		data := teamFormData{
			Page: newPage(r, "Add team", "add"),
			Form: form,
		}
		data.Error = err.Error()
		renderTemplateWithStatus(w, status, "add.html", data)
		return
	}

	http.Redirect(w, r, "/list", http.StatusSeeOther)
}

type listData struct {
	Page
	Catalog  *models.TeamPage
	IsAdmin  bool
	Founded  string
	Sort     string
	PageSize int
}

// PageURL links to another page of the same listing
func (d listData) PageURL(page int) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	if d.PageSize > 0 {
		q.Set("limit", strconv.Itoa(d.PageSize))
	}
	if d.Founded != "" {
		q.Set("founded", d.Founded)
	}
	if d.Sort != "" {
		q.Set("sort", d.Sort)
	}
	return "/list?" + q.Encode()
}

// List handles GET /list?page=&limit=&founded=&sort=
func (c *TeamController) List(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	data := listData{
		Page:    newPage(r, "Teams", "list"),
		IsAdmin: userctx.IsAdmin(r.Context()),
		Founded: strings.TrimSpace(params.Get("founded")),
		Sort:    params.Get("sort"),
	}

	limit := params.Get("limit")
	if limit == "" {
		limit = params.Get("pageSize")
	}

	query := models.TeamQuery{
		Sort:     data.Sort,
		Page:     atoiOrZero(params.Get("page")),
		PageSize: atoiOrZero(limit),
	}

	if data.Founded != "" {
		year, err := strconv.Atoi(data.Founded)
		if err != nil {
			data.Error = foundedMessage
			renderTemplateWithStatus(w, http.StatusBadRequest, "list.html", data)
			return
		}
		query.Founded = &year
	}

	page, err := c.services.Team.List(r.Context(), query)
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			serverError(w, r, err, "failed to list teams")
			return
		}
		data.Error = err.Error()
		renderTemplateWithStatus(w, status, "list.html", data)
		return
	}

	data.Catalog = page
	data.PageSize = page.PageSize
	renderTemplate(w, "list.html", data)
}

// EditPage handles GET /edit/{id}
func (c *TeamController) EditPage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		renderError(w, r, http.StatusNotFound, "Team not found.")
		return
	}

	team, err := c.services.Team.GetByID(r.Context(), id)
	if err != nil {
		c.teamError(w, r, err, "failed to load team")
		return
	}

	renderTemplate(w, "edit.html", teamFormData{
		Page: newPage(r, "Edit team", "list"),
		Team: team,
		Form: &models.TeamForm{
			Name:        team.Name,
			League:      team.League,
			Founded:     team.Founded,
			FirstImage:  team.FirstImage,
			SecondImage: team.SecondImage,
			ThirdImage:  team.ThirdImage,
		},
	})
}

// Edit handles POST /edit/{id}
func (c *TeamController) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		renderError(w, r, http.StatusNotFound, "Team not found.")
		return
	}

	form, err := parseTeamForm(r)
	if err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	if _, err := c.services.Team.Update(r.Context(), id, form); err != nil {
		if statusFor(err) != http.StatusBadRequest {
			c.teamError(w, r, err, "failed to update team")
			return
		}

		data := teamFormData{
			Page: newPage(r, "Edit team", "list"),
			Team: &models.Team{ID: id, Name: form.Name},
			Form: form,
		}
		data.Error = err.Error()
		renderTemplateWithStatus(w, http.StatusBadRequest, "edit.html", data)
		return
	}

	http.Redirect(w, r, "/list", http.StatusSeeOther)
}

// Delete handles POST /delete/{id}
func (c *TeamController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		renderError(w, r, http.StatusNotFound, "Team not found.")
		return
	}

	if err := c.services.Team.Delete(r.Context(), id); err != nil {
		c.teamError(w, r, err, "failed to delete team")
		return
	}

	http.Redirect(w, r, "/list", http.StatusSeeOther)
}

func (c *TeamController) teamError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch status := statusFor(err); status {
	case http.StatusNotFound:
		renderError(w, r, status, "Team not found.")
	case http.StatusInternalServerError:
		serverError(w, r, err, msg)
	default:
		renderError(w, r, status, err.Error())
	}
}

// parseTeamForm reads the team fields; a founded value that is not a number is left at zero
// so validation reports it
func parseTeamForm(r *http.Request) (*models.TeamForm, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	return &models.TeamForm{
		Name:        strings.TrimSpace(r.FormValue("name")),
		League:      strings.TrimSpace(r.FormValue("league")),
		Founded:     atoiOrZero(r.FormValue("founded")),
		FirstImage:  strings.TrimSpace(r.FormValue("first_image")),
		SecondImage: strings.TrimSpace(r.FormValue("second_image")),
		ThirdImage:  strings.TrimSpace(r.FormValue("third_image")),
	}, nil
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

// idParam parses a positive int64 URL parameter
func idParam(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
