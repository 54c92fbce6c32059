package controllers

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/footyhub/footyhub/authenticator"
	"github.com/footyhub/footyhub/middleware"
	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/services"
	"github.com/footyhub/footyhub/templates"
	"github.com/footyhub/footyhub/userctx"
)

var templateFuncs = template.FuncMap{
	"add": func(a, b int) int { return a + b },
	"sub": func(a, b int) int { return a - b },
}

// Page carries the fields every view reads from the layout
type Page struct {
	Title       string
	CurrentPage string
	User        *models.User
	Error       string
	Success     string
}

// newPage builds the layout data for the identity on r
func newPage(r *http.Request, title, current string) Page {
	return Page{
		Title:       title,
		CurrentPage: current,
		User:        userctx.GetUser(r.Context()),
	}
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, pageTemplate string, data interface{}) error {
	return renderTemplateWithStatus(w, http.StatusOK, pageTemplate, data)
}

// renderTemplateWithStatus creates a template set from the layout, the shared partials and
// pageTemplate, and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, pageTemplate string, data interface{}) error {
	tmpl := template.New("layout.html").Funcs(templateFuncs)

	_, err := tmpl.ParseFS(templates.FS, "layout.html", "team_form.html", "history_table.html", pageTemplate)
	if err != nil {
		log.Error().Err(err).Str("template", pageTemplate).Msg("failed to parse template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}

	// Render into a buffer so a failing template never leaves a half-written page behind
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", data); err != nil {
		log.Error().Err(err).Str("template", pageTemplate).Msg("failed to render template")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, err = buf.WriteTo(w)
	return err
}

// renderError renders the generic error view
func renderError(w http.ResponseWriter, r *http.Request, status int, message string) {
	data := struct {
		Page
		Status     int
		StatusText string
		Message    string
	}{
		Page:       newPage(r, http.StatusText(status), ""),
		Status:     status,
		StatusText: http.StatusText(status),
		Message:    message,
	}

	renderTemplateWithStatus(w, status, "error.html", data)
}

// serverError logs err against the request and renders a generic 500 page
func serverError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	log.Error().
		Err(err).
		Str("request_id", middleware.GetRequestID(r.Context())).
		Str("path", r.URL.Path).
		Msg(msg)
	renderError(w, r, http.StatusInternalServerError, "Something went wrong. Please try again later.")
}

// statusFor maps a service error onto the HTTP status of the view that reports it
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, models.ErrUpstreamUnavailable):
		return http.StatusOK
	default:
		return http.StatusInternalServerError
	}
}

// Controllers holds all controller instances
type Controllers struct {
	Auth      *AuthController
	Dashboard *DashboardController
	Team      *TeamController
	Lookup    *LookupController
	History   *HistoryController
	Admin     *AdminController
}

// NewControllers creates and initializes all controller instances.
// provider may be nil when single sign-on is not configured.
func NewControllers(services *services.Services, provider authenticator.Provider) *Controllers {
	return &Controllers{
		Auth:      NewAuthController(services, provider),
		Dashboard: NewDashboardController(services),
		Team:      NewTeamController(services),
		Lookup:    NewLookupController(services),
		History:   NewHistoryController(services),
		Admin:     NewAdminController(services),
	}
}
