package types

// Note is a free-text annotation owned by exactly one person.
type Note struct {
	// ID is the unique identifier of the note.
	ID int `json:"id" db:"id"`

	// PersonID references the owning person. The person must exist when
	// the note is created; the schema enforces this with a foreign key.
	PersonID int `json:"person_id" db:"person_id"`

	// Text is the note body. Never empty.
	Text string `json:"text" db:"text"`
}
