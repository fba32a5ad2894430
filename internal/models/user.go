package models

// User represents a row of the users table.
type User struct {
	UserID   int64  `json:"userID" db:"user_id"`
	Username string `json:"username" db:"username"`
	AuditFields
}
