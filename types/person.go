package types

import "time"

// Person is the primary tracked record: a human with biographical
// fields, a free-form stage label, and an optional profile picture.
type Person struct {
	// ID is the unique identifier of the person.
	ID int `json:"id" db:"id"`

	// Name is the person's display name. Never empty.
	Name string `json:"name" db:"name"`

	// Age is the person's age in years.
	Age int `json:"age" db:"age"`

	// Stage is a free-form category label (e.g., "lead", "onboarding").
	Stage string `json:"stage" db:"stage"`

	// ProfilePicture is the sanitized basename of the uploaded picture
	// in the upload store, or empty when no picture has been uploaded.
	// Clients never see this raw value; the API derives a URL from it.
	ProfilePicture string `json:"-" db:"profile_picture"`

	// DateAdded is the calendar date the record was added, supplied by
	// the caller at creation time. Only the date component is meaningful.
	DateAdded time.Time `json:"date_added" db:"date_added"`
}
