package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/peoplebook/apiserver/internal/services"
	"github.com/peoplebook/apiserver/internal/store"
)

// AuthHandler provides credential endpoints. There is no session or
// token layer; login is a single password check.
type AuthHandler struct {
	userService *services.UserService
}

// NewAuthHandler constructs an AuthHandler with the provided service.
func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{userService: userService}
}

// AuthRouter registers auth routes on the given router.
func AuthRouter(r chi.Router, userService *services.UserService) {
	handler := NewAuthHandler(userService)

	r.Post("/register", handler.Register)
	r.Post("/login", handler.Login)
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user credential record.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	if _, err := h.userService.Register(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid request data")
			return
		}
		if errors.Is(err, store.ErrConflict) {
			writeError(w, http.StatusConflict, "Username already exists")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{Message: "User registered successfully"})
}

// Login verifies credentials. Unknown username and wrong password
// produce the same response, so usernames cannot be enumerated.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := h.userService.Login(r.Context(), req.Username, req.Password); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to authenticate")
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Login successful"})
}
