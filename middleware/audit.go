package middleware

import (
	"encoding/json"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/footyhub/footyhub/models"
	"github.com/footyhub/footyhub/services"
	"github.com/footyhub/footyhub/userctx"
)

const redacted = "[REDACTED]"

// AuditMutations records every POST/PUT/DELETE request as a mutation entry once the handler has answered
func AuditMutations(recorder services.AuditRecorder) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Only log mutation operations
			if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodDelete {
				next.ServeHTTP(w, r)
				return
			}

			formData := captureFormData(r)
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			recorder.Record(models.AuditLogEntry{
				UserID:       userctx.GetUserID(r.Context()),
				RequestType:  models.RequestMutation,
				RequestData:  r.Method + " " + r.URL.Path,
				StatusCode:   status,
				ResponseData: formData,
			})
		})
	}
}

// captureFormData captures form data as JSON string, with password fields redacted
func captureFormData(r *http.Request) string {
	// Parse form data
	if err := r.ParseForm(); err != nil {
		return ""
	}

	// Convert to map
	formMap := make(map[string]interface{})
	for key, values := range r.PostForm {
		if strings.Contains(strings.ToLower(key), "password") {
			formMap[key] = redacted
			continue
		}
		if len(values) == 1 {
			formMap[key] = values[0]
		} else {
			formMap[key] = values
		}
	}

	// Convert to JSON
	jsonData, err := json.Marshal(formMap)
	if err != nil {
		return ""
	}

	return string(jsonData)
}
