package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/peoplebook/apiserver/types"
)

// PersonRepository handles persistence for people.
type PersonRepository struct {
	db *sql.DB
}

func NewPersonRepository(db *sql.DB) *PersonRepository {
	return &PersonRepository{db: db}
}

func (r *PersonRepository) Get(ctx context.Context, id int) (types.Person, error) {
	const query = `
		SELECT id, name, age, stage, profile_picture, date_added
		FROM people
		WHERE id = $1`
	var person types.Person
	var picture sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&person.ID,
		&person.Name,
		&person.Age,
		&person.Stage,
		&picture,
		&person.DateAdded,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Person{}, ErrNotFound
		}
		return types.Person{}, err
	}
	person.ProfilePicture = picture.String
	return person, nil
}

func (r *PersonRepository) List(ctx context.Context) ([]types.Person, error) {
	const query = `
		SELECT id, name, age, stage, profile_picture, date_added
		FROM people
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	people := make([]types.Person, 0)
	for rows.Next() {
		var person types.Person
		var picture sql.NullString
		if err := rows.Scan(
			&person.ID,
			&person.Name,
			&person.Age,
			&person.Stage,
			&picture,
			&person.DateAdded,
		); err != nil {
			return nil, err
		}
		person.ProfilePicture = picture.String
		people = append(people, person)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return people, nil
}

func (r *PersonRepository) Create(ctx context.Context, person types.Person) (types.Person, error) {
	const query = `
		INSERT INTO people (name, age, stage, date_added)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		person.Name,
		person.Age,
		person.Stage,
		person.DateAdded,
	).Scan(&person.ID); err != nil {
		return types.Person{}, err
	}
	return person, nil
}

// SetProfilePicture updates the stored picture reference for a person.
// The reference is a sanitized basename, never a filesystem path.
func (r *PersonRepository) SetProfilePicture(ctx context.Context, id int, filename string) error {
	const query = `UPDATE people SET profile_picture = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, filename, id)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
