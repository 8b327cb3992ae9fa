package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// MessageResponse is the body of every non-list response, success or
// failure. Internal detail never leaks into it.
type MessageResponse struct {
	Message string `json:"message"`
}

// CreatedResponse is the body of a successful create.
type CreatedResponse struct {
	Message string `json:"message"`
	ID      int    `json:"id"`
}

// Healthz reports liveness.
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MessageResponse{Message: "ok"})
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, MessageResponse{Message: message})
}

func parsePersonID(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "personID")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		return 0, errors.New("invalid person id")
	}
	return id, nil
}
