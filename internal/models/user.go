package models

// UserDB represents a credential record in the database.
// Rows are seeded by migrations and never written at runtime.
type UserDB struct {
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
}
