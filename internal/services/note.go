package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/peoplebook/apiserver/internal/store"
	"github.com/peoplebook/apiserver/types"
)

// NoteRepository defines persistence operations for notes.
type NoteRepository interface {
	Create(ctx context.Context, note types.Note) (types.Note, error)
	List(ctx context.Context) ([]types.Note, error)
	ListByPerson(ctx context.Context, personID int) ([]types.Note, error)
}

// NoteService encapsulates note use-cases.
type NoteService struct {
	notes  NoteRepository
	people PersonRepository
}

func NewNoteService(notes NoteRepository, people PersonRepository) *NoteService {
	return &NoteService{notes: notes, people: people}
}

// Add creates a note for an existing person. The person lookup is a
// fast-path check; the foreign key on notes.person_id is the real
// guarantee against orphaned notes.
func (s *NoteService) Add(ctx context.Context, personID int, text string) (types.Note, error) {
	if strings.TrimSpace(text) == "" {
		return types.Note{}, fmt.Errorf("%w: text is required", ErrValidation)
	}

	if _, err := s.people.Get(ctx, personID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.Note{}, store.ErrNotFound
		}
		return types.Note{}, err
	}

	return s.notes.Create(ctx, types.Note{PersonID: personID, Text: text})
}

// List returns every note.
func (s *NoteService) List(ctx context.Context) ([]types.Note, error) {
	return s.notes.List(ctx)
}

// ListForPerson returns the notes owned by one person. An unknown
// person id yields an empty list, not an error; whether this should
// 404 instead is an open product question.
func (s *NoteService) ListForPerson(ctx context.Context, personID int) ([]types.Note, error) {
	return s.notes.ListByPerson(ctx, personID)
}
