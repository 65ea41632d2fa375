package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/inkworks/contentforge/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, errorResponse) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)

	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error envelope: %v (%s)", err, rec.Body.String())
	}
	return rec.Code, resp
}

func TestHTTPErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err     error
		code    int
		message string
	}{
		{domain.ErrInvalidPostID, http.StatusBadRequest, "Invalid post ID"},
		{domain.ErrUserExists, http.StatusBadRequest, "User with this email already exists"},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{domain.ErrInvalidToken, http.StatusUnauthorized, "Not authorized"},
		{domain.ErrUnauthenticated, http.StatusUnauthorized, "Not authorized"},
		{domain.ErrForbidden, http.StatusForbidden, "Not authorized to modify this post"},
		{domain.ErrPostNotFound, http.StatusNotFound, "Post not found"},
		{domain.ErrUserNotFound, http.StatusNotFound, "User not found"},
		{domain.ErrGenerationFailed, http.StatusInternalServerError, "Failed to generate content. Please try again."},
	}

	for _, tc := range cases {
		code, resp := renderError(t, tc.err)
		if code != tc.code {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.code, code)
		}
		if resp.Success {
			t.Fatalf("%v: expected success=false", tc.err)
		}
		if resp.Message != tc.message {
			t.Fatalf("%v: expected message %q, got %q", tc.err, tc.message, resp.Message)
		}
	}
}

// Wrapped domain errors resolve the same as bare sentinels.
func TestHTTPErrorHandler_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("all models failed: %w", domain.ErrGenerationFailed)

	code, resp := renderError(t, wrapped)
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if resp.Message != "Failed to generate content. Please try again." {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHTTPErrorHandler_ValidationMessagePassesThrough(t *testing.T) {
	err := fmt.Errorf("%w: title is required", domain.ErrValidation)

	code, resp := renderError(t, err)
	if code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", code)
	}
	if resp.Message == "" || resp.Message == "Something went wrong" {
		t.Fatalf("expected the validation detail, got %q", resp.Message)
	}
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	code, resp := renderError(t, echo.NewHTTPError(http.StatusUnauthorized, "Not authorized, no token"))
	if code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if resp.Message != "Not authorized, no token" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

func TestHTTPErrorHandler_RouteNotFound(t *testing.T) {
	code, resp := renderError(t, echo.ErrNotFound)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
	if resp.Message != "Route not found" {
		t.Fatalf("unexpected message %q", resp.Message)
	}
}

// Unknown errors never leak their text to the client.
func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	code, resp := renderError(t, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}
	if resp.Message != "Something went wrong" {
		t.Fatalf("internal error leaked: %q", resp.Message)
	}
}

func TestHTTPErrorHandler_CommittedResponseUntouched(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := c.JSON(http.StatusOK, map[string]bool{"success": true}); err != nil {
		t.Fatalf("commit response: %v", err)
	}
	before := rec.Body.String()

	NewHTTPErrorHandler(zerolog.Nop())(errors.New("late failure"), c)

	if rec.Body.String() != before {
		t.Fatalf("handler wrote to a committed response")
	}
}
