package controllers

import (
	"net/http"

	"github.com/footyhub/footyhub/services"
)

// DashboardController handles the landing page and the shared denial views
type DashboardController struct {
	services *services.Services
}

// NewDashboardController creates a new dashboard controller
func NewDashboardController(services *services.Services) *DashboardController {
	return &DashboardController{
		services: services,
	}
}

// Index handles GET /
func (c *DashboardController) Index(w http.ResponseWriter, r *http.Request) {
	templateData := struct {
		Page
	}{
		Page: newPage(r, "Home", "home"),
	}

	renderTemplate(w, "index.html", templateData)
}

// Forbidden renders the view shown to identified users lacking the admin flag
func (c *DashboardController) Forbidden(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, http.StatusForbidden, "You must be an administrator to access this page.")
}

// NotFound renders the view for unknown routes
func (c *DashboardController) NotFound(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, http.StatusNotFound, "The page you are looking for does not exist.")
}
