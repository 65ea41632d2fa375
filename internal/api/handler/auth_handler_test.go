package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkworks/contentforge/internal/api/middleware"
	"github.com/inkworks/contentforge/internal/core/domain"
)

type stubAuthService struct {
	user  *domain.User
	token string
	err   error
}

func (s *stubAuthService) Signup(_ context.Context, _, _, _ string) (*domain.User, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.user, s.token, nil
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*domain.User, string, error) {
	if s.err != nil {
		return nil, "", s.err
	}
	return s.user, s.token, nil
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func authedContext(method, path, body string, identity domain.Identity) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newJSONContext(method, path, body)
	c.Set(middleware.CtxUserID, identity.UserID)
	c.Set(middleware.CtxUserName, identity.Name)
	c.Set(middleware.CtxUserEmail, identity.Email)
	return c, rec
}

func TestAuthHandler_Signup(t *testing.T) {
	svc := &stubAuthService{
		user:  &domain.User{ID: "507f1f77bcf86cd799439011", Name: "alice", Email: "alice@example.com"},
		token: "signed-token",
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/auth/signup",
		`{"name":"alice","email":"alice@example.com","password":"pass123"}`)

	if err := h.Signup(c); err != nil {
		t.Fatalf("Signup returned error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp signupResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success envelope")
	}
	if resp.Data.ID != "507f1f77bcf86cd799439011" || resp.Data.Token != "signed-token" {
		t.Fatalf("unexpected payload: %+v", resp.Data)
	}
}

func TestAuthHandler_Signup_InvalidBody(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	cases := []struct {
		name string
		body string
	}{
		{"missing name", `{"email":"a@example.com","password":"pass123"}`},
		{"bad email", `{"name":"alice","email":"nope","password":"pass123"}`},
		{"short password", `{"name":"alice","email":"a@example.com","password":"abc"}`},
		{"not json", `not json at all`},
	}
	for _, tc := range cases {
		c, _ := newJSONContext(http.MethodPost, "/auth/signup", tc.body)
		err := h.Signup(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", tc.name, err)
		}
	}
}

func TestAuthHandler_Signup_DuplicateEmail(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrUserExists})

	c, _ := newJSONContext(http.MethodPost, "/auth/signup",
		`{"name":"alice","email":"alice@example.com","password":"pass123"}`)

	if err := h.Signup(c); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists to propagate, got %v", err)
	}
}

// Login responds with the flat user+token shape, no envelope.
func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{
		user:  &domain.User{ID: "507f1f77bcf86cd799439011", Name: "alice", Email: "alice@example.com"},
		token: "signed-token",
	}
	h := NewAuthHandler(svc)

	c, rec := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"pass123"}`)

	if err := h.Login(c); err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if _, ok := resp["data"]; ok {
		t.Fatalf("login response must be flat, got %v", resp)
	}
	if resp["id"] != "507f1f77bcf86cd799439011" || resp["token"] != "signed-token" {
		t.Fatalf("unexpected payload: %v", resp)
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{err: domain.ErrInvalidCredentials})

	c, _ := newJSONContext(http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrong"}`)

	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	identity := domain.Identity{UserID: "u1", Name: "alice", Email: "alice@example.com"}
	c, rec := authedContext(http.MethodGet, "/auth/me", "", identity)

	if err := h.Me(c); err != nil {
		t.Fatalf("Me returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	for _, want := range []string{`"u1"`, `"alice"`, `"alice@example.com"`} {
		if !strings.Contains(rec.Body.String(), want) {
			t.Fatalf("response missing %s: %s", want, rec.Body.String())
		}
	}
}

func TestAuthHandler_Me_MissingClaims(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})

	c, _ := newJSONContext(http.MethodGet, "/auth/me", "")

	err := h.Me(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
