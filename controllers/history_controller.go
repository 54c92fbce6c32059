package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/services"
	"github.com/footyhub/footyhub/userctx"
)

// HistoryController exposes a user's audit log
type HistoryController struct {
	services *services.Services
}

// NewHistoryController creates a new history controller
func NewHistoryController(services *services.Services) *HistoryController {
	return &HistoryController{
		services: services,
	}
}

type historyData struct {
	Page
	Owner   *models.User
	Entries []models.AuditLogEntry
}

// Index handles GET /history
func (c *HistoryController) Index(w http.ResponseWriter, r *http.Request) {
	user := userctx.GetUser(r.Context())

	entries, err := c.services.History.ListForUser(r.Context(), user.ID)
	if err != nil {
		serverError(w, r, err, "failed to load history")
		return
	}

	renderTemplate(w, "history.html", historyData{
		Page:    newPage(r, "History", "history"),
		Entries: entries,
	})
}

// Show handles GET /history/{id} and returns the stored response snapshot as JSON
func (c *HistoryController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Log not found"})
		return
	}

	entry, err := c.services.History.Get(r.Context(), userctx.GetUser(r.Context()), id)
	if err != nil {
		c.jsonError(w, r, err)
		return
	}

	if json.Valid([]byte(entry.ResponseData)) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(entry.ResponseData))
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"data": entry.ResponseData})
}

// Delete handles GET /history/{id}/delete
func (c *HistoryController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		renderError(w, r, http.StatusNotFound, "Log not found.")
		return
	}

	if err := c.services.History.Delete(r.Context(), userctx.GetUser(r.Context()), id); err != nil {
		switch status := statusFor(err); status {
		case http.StatusNotFound:
			renderError(w, r, status, "Log not found.")
		case http.StatusForbidden:
			renderError(w, r, status, "You can only delete your own history.")
		default:
			serverError(w, r, err, "failed to delete log entry")
		}
		return
	}

	http.Redirect(w, r, "/history", http.StatusSeeOther)
}

func (c *HistoryController) jsonError(w http.ResponseWriter, r *http.Request, err error) {
	switch status := statusFor(err); status {
	case http.StatusNotFound:
		writeJSON(w, status, map[string]string{"error": "Log not found"})
	case http.StatusForbidden, http.StatusUnauthorized:
		writeJSON(w, status, map[string]string{"error": http.StatusText(status)})
	default:
		serverError(w, r, err, "failed to load log entry")
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
