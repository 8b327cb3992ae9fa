package handlers

import (
	"context"
	"sort"

	"github.com/peoplebook/apiserver/internal/store"
	"github.com/peoplebook/apiserver/types"
)

// In-memory repositories backing the handler tests. They enforce the
// same uniqueness and existence rules the database schema does.

type memPersonRepo struct {
	people map[int]types.Person
	nextID int
}

func newMemPersonRepo() *memPersonRepo {
	return &memPersonRepo{people: make(map[int]types.Person)}
}

func (m *memPersonRepo) Get(ctx context.Context, id int) (types.Person, error) {
	person, ok := m.people[id]
	if !ok {
		return types.Person{}, store.ErrNotFound
	}
	return person, nil
}

func (m *memPersonRepo) List(ctx context.Context) ([]types.Person, error) {
	people := make([]types.Person, 0, len(m.people))
	for _, person := range m.people {
		people = append(people, person)
	}
	sort.Slice(people, func(i, j int) bool { return people[i].ID < people[j].ID })
	return people, nil
}

func (m *memPersonRepo) Create(ctx context.Context, person types.Person) (types.Person, error) {
	m.nextID++
	person.ID = m.nextID
	m.people[person.ID] = person
	return person, nil
}

func (m *memPersonRepo) SetProfilePicture(ctx context.Context, id int, filename string) error {
	person, ok := m.people[id]
	if !ok {
		return store.ErrNotFound
	}
	person.ProfilePicture = filename
	m.people[id] = person
	return nil
}

type memNoteRepo struct {
	notes  []types.Note
	nextID int
}

func newMemNoteRepo() *memNoteRepo {
	return &memNoteRepo{}
}

func (m *memNoteRepo) Create(ctx context.Context, note types.Note) (types.Note, error) {
	m.nextID++
	note.ID = m.nextID
	m.notes = append(m.notes, note)
	return note, nil
}

func (m *memNoteRepo) List(ctx context.Context) ([]types.Note, error) {
	return append([]types.Note(nil), m.notes...), nil
}

func (m *memNoteRepo) ListByPerson(ctx context.Context, personID int) ([]types.Note, error) {
	notes := make([]types.Note, 0)
	for _, note := range m.notes {
		if note.PersonID == personID {
			notes = append(notes, note)
		}
	}
	return notes, nil
}

type memUserRepo struct {
	users  map[string]types.User
	nextID int
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]types.User)}
}

func (m *memUserRepo) GetByUsername(ctx context.Context, username string) (types.User, error) {
	user, ok := m.users[username]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return user, nil
}

func (m *memUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	if _, ok := m.users[user.Username]; ok {
		return types.User{}, store.ErrConflict
	}
	m.nextID++
	user.ID = m.nextID
	m.users[user.Username] = user
	return user, nil
}
