package domain

import "time"

// User is a dashboard operator account. Stored in the app-owned
// dashboard_users table, not in the legacy record store.
type User struct {
	UserID       string    `json:"userID"`
	Username     string    `json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
