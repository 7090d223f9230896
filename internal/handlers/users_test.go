package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"devconnect/internal/service"
)

var errDB = errors.New("db down")

func postJSON(r http.Handler, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func decodeErrors(t *testing.T, body []byte) []string {
	t.Helper()
	var resp ErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		t.Fatalf("unmarshal error body %s: %v", body, err)
	}
	msgs := make([]string, 0, len(resp.Errors))
	for _, e := range resp.Errors {
		msgs = append(msgs, e.Msg)
	}
	return msgs
}

func TestRegister_Success(t *testing.T) {
	auth := &mockAuth{registerToken: "tok123"}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/api/users", `{"name":"A","email":"a@x.com","password":"abcdef"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var m map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &m)
	if m["token"] != "tok123" {
		t.Fatalf("expected token tok123, got %v", m["token"])
	}
	if auth.lastRegister.Email != "a@x.com" || auth.lastRegister.Name != "A" {
		t.Fatalf("unexpected register input: %+v", auth.lastRegister)
	}
}

func TestRegister_ValidationReportsAllViolations(t *testing.T) {
	auth := &mockAuth{}
	r := newTestRouter(&service.Service{Authorization: auth})

	// Every field violated at once: all three messages must come back together.
	w := postJSON(r, "/api/users", `{"name":"","email":"not-an-email","password":"abc"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	msgs := decodeErrors(t, w.Body.Bytes())
	want := map[string]bool{
		"Name is required":                    false,
		"Please provide valid email":          false,
		"Password must be min of 6 character": false,
	}
	for _, m := range msgs {
		if _, ok := want[m]; ok {
			want[m] = true
		}
	}
	for msg, seen := range want {
		if !seen {
			t.Fatalf("missing validation message %q in %v", msg, msgs)
		}
	}

	if auth.registerCalls != 0 {
		t.Fatalf("invalid input must not reach the service, got %d calls", auth.registerCalls)
	}
}

func TestRegister_DuplicateEmailConflict(t *testing.T) {
	auth := &mockAuth{registerErr: service.ErrEmailTaken}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/api/users", `{"name":"A","email":"a@x.com","password":"abcdef"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	const wantBody = `{"errors":[{"msg":"User already exist"}]}`
	if w.Body.String() != wantBody {
		t.Fatalf("conflict body: got %s, want %s", w.Body.String(), wantBody)
	}
}

func TestRegister_ServiceErrorIsGeneric500(t *testing.T) {
	auth := &mockAuth{registerErr: errDB}
	r := newTestRouter(&service.Service{Authorization: auth})

	w := postJSON(r, "/api/users", `{"name":"A","email":"a@x.com","password":"abcdef"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	msgs := decodeErrors(t, w.Body.Bytes())
	if len(msgs) != 1 || msgs[0] != msgServerError {
		t.Fatalf("500 body must be generic, got %v", msgs)
	}
}
