package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplebook/apiserver/internal/services"
	"github.com/peoplebook/apiserver/internal/store"
	"github.com/peoplebook/apiserver/types"
)

// NotesHandler provides HTTP handlers for notes.
type NotesHandler struct {
	noteService *services.NoteService
}

// NewNotesHandler constructs a handler with the provided service.
func NewNotesHandler(noteService *services.NoteService) *NotesHandler {
	return &NotesHandler{noteService: noteService}
}

// NotesRouter registers note routes on the given router.
func NotesRouter(r chi.Router, noteService *services.NoteService) {
	handler := NewNotesHandler(noteService)

	r.Post("/", handler.AddNote)
	r.Get("/", handler.ListNotes)
}

// AddNoteRequest is the create-note payload.
type AddNoteRequest struct {
	PersonID int    `json:"person_id"`
	Text     string `json:"text"`
}

// NoteView is the external note representation.
type NoteView struct {
	ID       int    `json:"id"`
	PersonID int    `json:"person_id"`
	Text     string `json:"text"`
}

func (h *NotesHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	var req AddNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	note, err := h.noteService.Add(r.Context(), req.PersonID, req.Text)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Person not found")
			return
		}
		if errors.Is(err, services.ErrValidation) {
			writeError(w, http.StatusBadRequest, capitalize(err.Error()))
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to add note")
		return
	}

	writeJSON(w, http.StatusCreated, CreatedResponse{
		Message: "Note added successfully!",
		ID:      note.ID,
	})
}

func (h *NotesHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.noteService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list notes")
		return
	}

	writeJSON(w, http.StatusOK, toNoteViews(notes))
}

func toNoteViews(notes []types.Note) []NoteView {
	views := make([]NoteView, 0, len(notes))
	for _, note := range notes {
		views = append(views, NoteView{
			ID:       note.ID,
			PersonID: note.PersonID,
			Text:     note.Text,
		})
	}
	return views
}
