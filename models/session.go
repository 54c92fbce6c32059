package models

import "time"

// SessionBinding maps a client address to the user logged in from it.
// There is at most one binding per address; the latest login wins.
type SessionBinding struct {
	Address   string    `json:"address" db:"address"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
