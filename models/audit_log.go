package models

import "time"

// Request types recorded in the audit log
const (
	RequestLogin        = "login"
	RequestSignup       = "signup"
	RequestLogout       = "logout"
	RequestSSOLogin     = "sso-login"
	RequestWeather      = "weather"
	RequestTeamInfo     = "team-info"
	RequestFootballNews = "football-news"
	RequestMutation     = "mutation"
)

// AuditLogEntry is a point-in-time record of a notable request
type AuditLogEntry struct {
	ID           int64     `json:"id" db:"id"`
	UserID       *int64    `json:"user_id,omitempty" db:"user_id"`
	RequestType  string    `json:"request_type" db:"request_type"`
	RequestData  string    `json:"request_data" db:"request_data"`
	StatusCode   int       `json:"status_code" db:"status_code"`
	Timestamp    time.Time `json:"timestamp" db:"timestamp"`
	ResponseData string    `json:"response_data" db:"response_data"`
}

// FormatTimestamp formats the entry time as YYYY-MM-DD HH:MM:SS
func (e *AuditLogEntry) FormatTimestamp() string {
	return e.Timestamp.Format("2006-01-02 15:04:05")
}
