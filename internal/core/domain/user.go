package domain

// User represents a wallet holder in the domain.
type User struct {
	UserID   int64  `json:"userID"`   // Primary Key
	Username string `json:"username"` // Unique handle
	AuditFields
}
