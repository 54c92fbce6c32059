package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/services"
)

// AdminController handles user administration
type AdminController struct {
	services *services.Services
}

// NewAdminController creates a new admin controller
func NewAdminController(services *services.Services) *AdminController {
	return &AdminController{
		services: services,
	}
}

type adminData struct {
	Page
	Users []models.User
	Form  *models.SignupForm
}

// Index handles GET /admin
func (c *AdminController) Index(w http.ResponseWriter, r *http.Request) {
	c.renderIndex(w, r, http.StatusOK, &models.SignupForm{}, "")
}

func (c *AdminController) renderIndex(w http.ResponseWriter, r *http.Request, status int, form *models.SignupForm, message string) {
	users, err := c.services.Users.GetAll(r.Context())
	if err != nil {
		serverError(w, r, err, "failed to load users")
		return
	}

	data := adminData{
		Page:  newPage(r, "Admin", "admin"),
		Users: users,
		Form:  form,
	}
	data.Error = message

	renderTemplateWithStatus(w, status, "admin.html", data)
}

// Delete handles GET /admin/{user}/delete
func (c *AdminController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "user")
	if !ok {
		renderError(w, r, http.StatusNotFound, "User not found.")
		return
	}

	if err := c.services.Users.Delete(r.Context(), id); err != nil {
		c.userError(w, r, err, "failed to delete user")
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// MakeAdmin handles GET /admin/{user}/makeAdmin
func (c *AdminController) MakeAdmin(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "user")
	if !ok {
		renderError(w, r, http.StatusNotFound, "User not found.")
		return
	}

	if err := c.services.Users.MakeAdmin(r.Context(), id); err != nil {
		c.userError(w, r, err, "failed to promote user")
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// AddUser handles POST /admin/addUser
func (c *AdminController) AddUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	form := &models.SignupForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
		IsAdmin:  r.FormValue("is_admin") == "on",
	}

	if _, err := c.services.Users.Create(r.Context(), form); err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			serverError(w, r, err, "failed to add user")
			return
		}
		c.renderIndex(w, r, status, form, err.Error())
		return
	}

	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

type adminUserData struct {
	Page
	Target  *models.User
	Form    *models.UserUpdateForm
	Entries []models.AuditLogEntry
}

// ShowUser handles GET /admin/{user} where user is a username
func (c *AdminController) ShowUser(w http.ResponseWriter, r *http.Request) {
	user, err := c.services.Users.GetByUsername(r.Context(), chi.URLParam(r, "user"))
	if err != nil {
		c.userError(w, r, err, "failed to load user")
		return
	}

	c.renderUser(w, r, http.StatusOK, user, &models.UserUpdateForm{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}, "")
}

func (c *AdminController) renderUser(w http.ResponseWriter, r *http.Request, status int, user *models.User, form *models.UserUpdateForm, message string) {
	entries, err := c.services.History.ListForUser(r.Context(), user.ID)
	if err != nil {
		serverError(w, r, err, "failed to load user history")
		return
	}

	data := adminUserData{
		Page:    newPage(r, user.Username, "admin"),
		Target:  user,
		Form:    form,
		Entries: entries,
	}
	data.Error = message

	renderTemplateWithStatus(w, status, "admin_user.html", data)
}

// UpdateUser handles POST /admin/updateUser
func (c *AdminController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Failed to parse form", http.StatusBadRequest)
		return
	}

	id, _ := strconv.ParseInt(r.FormValue("userId"), 10, 64)
	form := &models.UserUpdateForm{
		ID:       id,
		Username: strings.TrimSpace(r.FormValue("username")),
		Email:    strings.TrimSpace(r.FormValue("email")),
		Password: r.FormValue("password"),
	}

	_, err := c.services.Users.Update(r.Context(), form)
	if err == nil {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}

	status := statusFor(err)
	if status != http.StatusBadRequest && status != http.StatusConflict {
		c.userError(w, r, err, "failed to update user")
		return
	}

	// Re-render the user page with the submitted values when the target still exists
	user, lookupErr := c.services.Users.GetByID(r.Context(), id)
	if lookupErr != nil {
		renderError(w, r, status, err.Error())
		return
	}
	c.renderUser(w, r, status, user, form, err.Error())
}

func (c *AdminController) userError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	switch status := statusFor(err); status {
	case http.StatusNotFound:
		renderError(w, r, status, "User not found.")
	case http.StatusInternalServerError:
		serverError(w, r, err, msg)
	default:
		renderError(w, r, status, err.Error())
	}
}
