package handlers

import (
	"net/http"
	"testing"
)

func TestRegisterAndLoginEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/register", `{"username":"alice","password":"s3cret"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("register: status %d body %s", w.Code, w.Body.String())
	}
	resp := decodeBody[MessageResponse](t, w)
	if resp.Message != "User registered successfully" {
		t.Fatalf("unexpected message: %q", resp.Message)
	}

	w = doJSON(t, router, http.MethodPost, "/api/login", `{"username":"alice","password":"s3cret"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("login: status %d body %s", w.Code, w.Body.String())
	}
	if msg := decodeBody[MessageResponse](t, w); msg.Message != "Login successful" {
		t.Fatalf("unexpected message: %q", msg.Message)
	}
}

func TestRegisterRejections(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/register", `{"username":"","password":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing fields, got %d", w.Code)
	}

	if w := doJSON(t, router, http.MethodPost, "/api/register", `{"username":"alice","password":"one"}`); w.Code != http.StatusCreated {
		t.Fatalf("register: status %d", w.Code)
	}

	// Duplicate username is rejected no matter the password.
	w = doJSON(t, router, http.MethodPost, "/api/register", `{"username":"alice","password":"two"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate username, got %d", w.Code)
	}
}

func TestLoginFailuresAreIdentical(t *testing.T) {
	router := newTestRouter(t)

	if w := doJSON(t, router, http.MethodPost, "/api/register", `{"username":"alice","password":"right"}`); w.Code != http.StatusCreated {
		t.Fatalf("register: status %d", w.Code)
	}

	payloads := []string{
		`{"username":"alice","password":"wrong"}`,
		`{"username":"nobody","password":"right"}`,
		`{"username":"nobody","password":"wrong"}`,
		`{}`,
	}

	var firstBody string
	for i, payload := range payloads {
		w := doJSON(t, router, http.MethodPost, "/api/login", payload)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("payload %d: expected 401, got %d", i, w.Code)
		}
		if i == 0 {
			firstBody = w.Body.String()
			continue
		}
		if w.Body.String() != firstBody {
			t.Fatalf("login failure responses differ: %q vs %q", firstBody, w.Body.String())
		}
	}
}
