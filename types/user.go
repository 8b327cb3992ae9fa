package types

// User is a credential record used for authentication. It is stored in
// a separate logical database from people/notes and has no relationship
// to the Person record.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Username is the unique login name, case-sensitive as stored.
	Username string `json:"username" db:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// The raw password is never persisted or logged, and this field is
	// never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`
}
