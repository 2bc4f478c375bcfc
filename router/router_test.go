// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/danielhkuo/quickly-quiz/testutil"
)

func newTestRouter(t *testing.T) (*chi.Mux, *testutil.Services) {
	t.Helper()

	s := testutil.NewServices(t)
	deps := Deps{
		Tests:     s.Tests,
		Responses: s.Responses,
		Accounts:  s.Accounts,
		Sessions:  s.Sessions,
		Tokens:    s.Tokens,
	}
	return NewRouter(deps, s.Config), s
}

func TestHealthEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	expected := "quickly-quiz API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux, _ := newTestRouter(t)

	// 400, 401 and 404 are all valid here; only an unmatched route is a failure
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},

		{"POST", "/auth/register"},
		{"POST", "/auth/login"},
		{"POST", "/auth/logout"},
		{"GET", "/auth/me"},
		{"GET", "/preferences"},
		{"PUT", "/preferences"},

		{"POST", "/builder/questions"},
		{"POST", "/builder/draft/edit"},
		{"POST", "/builder/publish"},
		{"POST", "/builder/template/export"},
		{"POST", "/builder/template/import"},

		{"GET", "/tests/test-id"},
		{"POST", "/tests/test-id/responses"},
		{"POST", "/tests/test-id/unlock"},
		{"POST", "/tests/test-id/answer-sheet"},
		{"GET", "/tests/test-id/qr"},

		{"GET", "/dashboard/tests"},
		{"GET", "/dashboard/tests/test-id/stats"},
		{"GET", "/dashboard/tests/test-id/report.pdf"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
			if w.Code == http.StatusNotFound && w.Header().Get("Content-Type") != "application/json" {
				t.Errorf("Route %s %s not registered", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux, _ := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/tests/test-id"},
		{"PUT", "/tests/test-id/unlock"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	mux, s := newTestRouter(t)
	token := testutil.CreateTestUser(t, s, "alice")

	testCases := []struct {
		name           string
		headers        map[string]string
		expectedStatus int
	}{
		{"no token", nil, http.StatusUnauthorized},
		{"garbage token", testutil.Bearer("not-a-jwt"), http.StatusUnauthorized},
		{"valid token", testutil.Bearer(token), http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", "/auth/me", nil, tc.headers)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	mux, _ := newTestRouter(t)

	req := httptest.NewRequest("OPTIONS", "/builder/publish", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK && w.Code != http.StatusNoContent {
		t.Errorf("Expected preflight success, got %d", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin '*', got '%s'", got)
	}
}
