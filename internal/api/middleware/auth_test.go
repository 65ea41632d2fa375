package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/inkworks/contentforge/internal/core/domain"
)

type stubTokenService struct {
	identity *domain.Identity
	err      error
	calls    int
}

func (s *stubTokenService) Issue(_ *domain.User) (string, error) { return "", nil }

func (s *stubTokenService) Verify(_ string) (*domain.Identity, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.identity, nil
}

func invoke(mw echo.MiddlewareFunc, header string) (echo.Context, error) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	c := e.NewContext(req, httptest.NewRecorder())

	handler := mw(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	return c, handler(c)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := &stubTokenService{identity: &domain.Identity{UserID: "u1", Name: "alice", Email: "alice@example.com"}}

	c, err := invoke(RequireAuth(tokens), "Bearer good-token")
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if got := c.Get(CtxUserID); got != "u1" {
		t.Fatalf("expected user_id u1 in context, got %v", got)
	}
	if got := c.Get(CtxUserName); got != "alice" {
		t.Fatalf("expected user_name alice in context, got %v", got)
	}
	if got := c.Get(CtxUserEmail); got != "alice@example.com" {
		t.Fatalf("expected user_email in context, got %v", got)
	}
}

func TestRequireAuth_MissingOrMalformedHeader(t *testing.T) {
	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"wrong scheme", "Basic abc123"},
		{"no token", "Bearer "},
		{"scheme only", "Bearer"},
	}

	for _, c := range cases {
		tokens := &stubTokenService{}
		_, err := invoke(RequireAuth(tokens), c.header)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected 401, got %v", c.name, err)
		}
		if he.Message != "Not authorized, no token" {
			t.Fatalf("%s: unexpected message %v", c.name, he.Message)
		}
		if tokens.calls != 0 {
			t.Fatalf("%s: Verify called for malformed header", c.name)
		}
	}
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	tokens := &stubTokenService{err: domain.ErrInvalidToken}

	c, err := invoke(RequireAuth(tokens), "Bearer bad-token")

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
	if he.Message != "Not authorized, invalid token" {
		t.Fatalf("unexpected message %v", he.Message)
	}
	if c.Get(CtxUserID) != nil {
		t.Fatalf("identity attached despite invalid token")
	}
}

func TestRequireAuth_CaseInsensitiveScheme(t *testing.T) {
	tokens := &stubTokenService{identity: &domain.Identity{UserID: "u1"}}

	if _, err := invoke(RequireAuth(tokens), "bearer good-token"); err != nil {
		t.Fatalf("lowercase scheme rejected: %v", err)
	}
}

func TestOptionalAuth_AttachesIdentity(t *testing.T) {
	tokens := &stubTokenService{identity: &domain.Identity{UserID: "u1", Name: "alice"}}

	c, err := invoke(OptionalAuth(tokens), "Bearer good-token")
	if err != nil {
		t.Fatalf("expected request to pass, got %v", err)
	}
	if got := c.Get(CtxUserID); got != "u1" {
		t.Fatalf("expected identity in context, got %v", got)
	}
}

// OptionalAuth never halts: absent and invalid tokens both proceed anonymous.
func TestOptionalAuth_ProceedsAnonymous(t *testing.T) {
	cases := []struct {
		name   string
		tokens *stubTokenService
		header string
	}{
		{"no header", &stubTokenService{}, ""},
		{"invalid token", &stubTokenService{err: domain.ErrInvalidToken}, "Bearer bad"},
		{"malformed header", &stubTokenService{}, "nonsense"},
	}

	for _, tc := range cases {
		c, err := invoke(OptionalAuth(tc.tokens), tc.header)
		if err != nil {
			t.Fatalf("%s: expected request to pass, got %v", tc.name, err)
		}
		if c.Get(CtxUserID) != nil {
			t.Fatalf("%s: unexpected identity in context", tc.name)
		}
	}
}
