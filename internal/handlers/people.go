package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/peoplebook/apiserver/config"
	"github.com/peoplebook/apiserver/internal/services"
)

const uploadsURLPrefix = "/uploads/"

// PeopleHandler provides HTTP handlers for person records.
type PeopleHandler struct {
	personService  *services.PersonService
	noteService    *services.NoteService
	maxUploadBytes int64
}

// NewPeopleHandler constructs a handler with the provided services.
func NewPeopleHandler(personService *services.PersonService, noteService *services.NoteService, uploadCfg config.UploadConfig) *PeopleHandler {
	return &PeopleHandler{
		personService:  personService,
		noteService:    noteService,
		maxUploadBytes: uploadCfg.MaxBytes,
	}
}

// PeopleRouter registers person routes on the given router.
func PeopleRouter(r chi.Router, personService *services.PersonService, noteService *services.NoteService, uploadCfg config.UploadConfig) {
	handler := NewPeopleHandler(personService, noteService, uploadCfg)

	r.Post("/", handler.AddPerson)
	r.Get("/", handler.ListPeople)
	r.Route("/{personID}", func(r chi.Router) {
		r.Get("/notes", handler.ListPersonNotes)
		r.Post("/upload_picture", handler.UploadPicture)
	})
}

// AddPersonRequest is the create-person payload.
type AddPersonRequest struct {
	Name      string   `json:"name"`
	Age       *int     `json:"age"`
	Stage     string   `json:"stage"`
	Notes     []string `json:"notes"`
	DateAdded string   `json:"date_added"`
}

// PersonView is the external person representation.
type PersonView struct {
	ID             int      `json:"id"`
	Name           string   `json:"name"`
	Age            int      `json:"age"`
	Stage          string   `json:"stage"`
	DateAdded      string   `json:"date_added"`
	ProfilePicture *string  `json:"profile_picture"`
	Notes          []string `json:"notes"`
}

func (h *PeopleHandler) AddPerson(w http.ResponseWriter, r *http.Request) {
	var req AddPersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		return
	}
	if req.Age == nil {
		writeError(w, http.StatusBadRequest, "Invalid request data: age is required")
		return
	}

	id, err := h.personService.Add(r.Context(), req.Name, *req.Age, req.Stage, req.DateAdded, req.Notes)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeError(w, http.StatusBadRequest, capitalize(err.Error()))
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to add person")
		return
	}

	writeJSON(w, http.StatusCreated, CreatedResponse{
		Message: "Person and notes added successfully!",
		ID:      id,
	})
}

func (h *PeopleHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	details, err := h.personService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list people")
		return
	}

	views := make([]PersonView, 0, len(details))
	for _, detail := range details {
		views = append(views, toPersonView(detail))
	}

	writeJSON(w, http.StatusOK, views)
}

func (h *PeopleHandler) ListPersonNotes(w http.ResponseWriter, r *http.Request) {
	id, err := parsePersonID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid person id")
		return
	}

	notes, err := h.noteService.ListForPerson(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list notes")
		return
	}

	writeJSON(w, http.StatusOK, toNoteViews(notes))
}

func toPersonView(detail services.PersonDetail) PersonView {
	view := PersonView{
		ID:        detail.Person.ID,
		Name:      detail.Person.Name,
		Age:       detail.Person.Age,
		Stage:     detail.Person.Stage,
		DateAdded: detail.Person.DateAdded.Format(services.DateLayout),
		Notes:     detail.Notes,
	}
	if detail.Person.ProfilePicture != "" {
		url := uploadsURLPrefix + path.Base(detail.Person.ProfilePicture)
		view.ProfilePicture = &url
	}
	return view
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
