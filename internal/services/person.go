package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/peoplebook/apiserver/config"
	"github.com/peoplebook/apiserver/internal/storage"
	"github.com/peoplebook/apiserver/types"
)

// DateLayout is the wire format for the date_added field.
const DateLayout = "2006-01-02"

// PersonRepository defines persistence operations for people.
type PersonRepository interface {
	Get(ctx context.Context, id int) (types.Person, error)
	List(ctx context.Context) ([]types.Person, error)
	Create(ctx context.Context, person types.Person) (types.Person, error)
	SetProfilePicture(ctx context.Context, id int, filename string) error
}

// PersonDetail is a person with their notes resolved.
type PersonDetail struct {
	Person types.Person
	Notes  []string
}

// PersonService encapsulates person use-cases, including ownership of
// profile-picture uploads.
type PersonService struct {
	people  PersonRepository
	notes   NoteRepository
	uploads *storage.Storage

	maxUploadBytes int64
	allowedExts    map[string]bool
}

func NewPersonService(people PersonRepository, notes NoteRepository, uploads *storage.Storage, cfg config.UploadConfig) *PersonService {
	allowed := make(map[string]bool, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}
	return &PersonService{
		people:         people,
		notes:          notes,
		uploads:        uploads,
		maxUploadBytes: cfg.MaxBytes,
		allowedExts:    allowed,
	}
}

// Add creates a person and then their initial notes, in order. The
// person is committed before any note; a note failure after that point
// leaves the person with fewer notes than requested, and the error is
// returned alongside the already-assigned id rather than hidden.
func (s *PersonService) Add(ctx context.Context, name string, age int, stage, dateAdded string, noteTexts []string) (int, error) {
	name = strings.TrimSpace(name)
	stage = strings.TrimSpace(stage)
	if name == "" {
		return 0, fmt.Errorf("%w: name is required", ErrValidation)
	}
	if stage == "" {
		return 0, fmt.Errorf("%w: stage is required", ErrValidation)
	}

	date, err := time.Parse(DateLayout, strings.TrimSpace(dateAdded))
	if err != nil {
		return 0, fmt.Errorf("%w: date_added must be YYYY-MM-DD", ErrValidation)
	}

	person, err := s.people.Create(ctx, types.Person{
		Name:      name,
		Age:       age,
		Stage:     stage,
		DateAdded: date,
	})
	if err != nil {
		return 0, err
	}

	for _, text := range noteTexts {
		if _, err := s.notes.Create(ctx, types.Note{PersonID: person.ID, Text: text}); err != nil {
			return person.ID, err
		}
	}

	return person.ID, nil
}

// Get returns a single person by id.
func (s *PersonService) Get(ctx context.Context, id int) (types.Person, error) {
	return s.people.Get(ctx, id)
}

// List returns every person with their notes resolved, in note id order.
func (s *PersonService) List(ctx context.Context) ([]PersonDetail, error) {
	people, err := s.people.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]PersonDetail, 0, len(people))
	for _, person := range people {
		notes, err := s.notes.ListByPerson(ctx, person.ID)
		if err != nil {
			return nil, err
		}
		texts := make([]string, 0, len(notes))
		for _, note := range notes {
			texts = append(texts, note.Text)
		}
		details = append(details, PersonDetail{Person: person, Notes: texts})
	}

	return details, nil
}
