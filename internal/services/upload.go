package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"
)

// UploadProfilePicture validates an image upload, writes it to the
// upload store under a sanitized basename (overwriting any file with
// the same name), and points the person's profile_picture at it.
// It returns the stored basename.
func (s *PersonService) UploadProfilePicture(ctx context.Context, personID int, filename string, data []byte) (string, error) {
	if _, err := s.people.Get(ctx, personID); err != nil {
		return "", err
	}

	if strings.TrimSpace(filename) == "" {
		return "", fmt.Errorf("%w: no selected file", ErrValidation)
	}
	if len(data) == 0 {
		return "", fmt.Errorf("%w: no file part", ErrValidation)
	}
	if int64(len(data)) > s.maxUploadBytes {
		return "", ErrFileTooLarge
	}

	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if ext == "" || !s.allowedExts[strings.ToLower(ext)] {
		return "", fmt.Errorf("%w: invalid file format", ErrValidation)
	}

	name := SanitizeFilename(filename)
	if name == "" {
		return "", fmt.Errorf("%w: invalid file name", ErrValidation)
	}

	contentType := mime.TypeByExtension("." + strings.ToLower(ext))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	if err := s.uploads.Put(ctx, name, bytes.NewReader(data), int64(len(data)), contentType); err != nil {
		return "", err
	}

	if err := s.people.SetProfilePicture(ctx, personID, name); err != nil {
		return "", err
	}

	return name, nil
}

// OpenUpload opens a stored upload by basename. The key is reduced to
// its base name first so callers can never address outside the store.
func (s *PersonService) OpenUpload(ctx context.Context, filename string) (io.ReadCloser, error) {
	name := SanitizeFilename(filename)
	if name == "" {
		return nil, fmt.Errorf("%w: invalid file name", ErrValidation)
	}
	return s.uploads.Get(ctx, name)
}

// SanitizeFilename collapses an uploaded filename to a safe basename:
// path components (both separator styles) are stripped, spaces become
// underscores, anything outside [A-Za-z0-9._-] is dropped, and leading
// dots are removed so a stored name can never be a hidden or relative
// path. Letter case is preserved. Returns "" when nothing safe remains.
func SanitizeFilename(filename string) string {
	filename = strings.ReplaceAll(filename, "\\", "/")
	filename = path.Base(filename)

	var b strings.Builder
	for _, r := range filename {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteByte('_')
		}
	}

	name := strings.TrimLeft(b.String(), ".")
	if name == "" || strings.Trim(name, "._-") == "" {
		return ""
	}
	return name
}
