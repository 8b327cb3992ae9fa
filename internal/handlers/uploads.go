package handlers

import (
	"errors"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/peoplebook/apiserver/internal/services"
	"github.com/peoplebook/apiserver/internal/store"
)

const (
	maxMultipartMemory = 1 << 20
	formFieldFile      = "file"
)

// UploadPicture accepts a multipart profile-picture upload for one
// person. Oversized bodies are rejected with 413 before the service
// touches them.
func (h *PeopleHandler) UploadPicture(w http.ResponseWriter, r *http.Request) {
	id, err := parsePersonID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid person id")
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	form := r.MultipartForm
	if form == nil || len(form.File[formFieldFile]) == 0 {
		writeError(w, http.StatusBadRequest, "No file part")
		return
	}

	fileHeader := form.File[formFieldFile][0]
	if strings.TrimSpace(fileHeader.Filename) == "" {
		writeError(w, http.StatusBadRequest, "No selected file")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read upload")
		return
	}
	data, err := readFileLimited(file, h.maxUploadBytes)
	_ = file.Close()
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}

	if _, err := h.personService.UploadProfilePicture(r.Context(), id, fileHeader.Filename, data); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			writeError(w, http.StatusNotFound, "Person not found")
		case errors.Is(err, services.ErrFileTooLarge):
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
		case errors.Is(err, services.ErrValidation):
			writeError(w, http.StatusBadRequest, "Invalid file format")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to upload picture")
		}
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Profile picture uploaded successfully!"})
}

// UploadsRouter registers the upload retrieval route.
func UploadsRouter(r chi.Router, personService *services.PersonService) {
	r.Get("/{filename}", serveUpload(personService))
}

func serveUpload(personService *services.PersonService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filename := chi.URLParam(r, "filename")

		rc, err := personService.OpenUpload(r.Context(), filename)
		if err != nil {
			writeError(w, http.StatusNotFound, "File not found")
			return
		}
		defer rc.Close()

		// Object-store backends may not fail until the first read, so
		// buffer the file before committing to a 200.
		data, err := io.ReadAll(rc)
		if err != nil {
			writeError(w, http.StatusNotFound, "File not found")
			return
		}

		contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(filename)))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}

func readFileLimited(reader io.Reader, limit int64) ([]byte, error) {
	limited := io.LimitReader(reader, limit+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, errors.New("failed to read upload")
	}
	if int64(len(data)) > limit {
		return nil, errors.New("uploaded file too large")
	}
	return data, nil
}
