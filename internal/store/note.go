package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/peoplebook/apiserver/types"
)

const foreignKeyViolation = "23503"

// NoteRepository handles persistence for notes.
type NoteRepository struct {
	db *sql.DB
}

func NewNoteRepository(db *sql.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

func (r *NoteRepository) Create(ctx context.Context, note types.Note) (types.Note, error) {
	const query = `
		INSERT INTO notes (person_id, text)
		VALUES ($1, $2)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		note.PersonID,
		note.Text,
	).Scan(&note.ID); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return types.Note{}, ErrNotFound
		}
		return types.Note{}, err
	}
	return note, nil
}

func (r *NoteRepository) List(ctx context.Context) ([]types.Note, error) {
	const query = `
		SELECT id, person_id, text
		FROM notes
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNotes(rows)
}

func (r *NoteRepository) ListByPerson(ctx context.Context, personID int) ([]types.Note, error) {
	const query = `
		SELECT id, person_id, text
		FROM notes
		WHERE person_id = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanNotes(rows)
}

func scanNotes(rows *sql.Rows) ([]types.Note, error) {
	notes := make([]types.Note, 0)
	for rows.Next() {
		var note types.Note
		if err := rows.Scan(&note.ID, &note.PersonID, &note.Text); err != nil {
			return nil, err
		}
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}
