package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bcheng/portfolio-backend/auth"
)

func TestGateBlocksUnauthenticatedWrites(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/projects"},
		{http.MethodPut, "/api/skills/6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{http.MethodDelete, "/api/about/6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
		{http.MethodGet, "/api/contact"},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := env.do(t, tc.method, tc.path, `{}`)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401, body %s", rec.Code, rec.Body.String())
			}
			if ct := rec.Header().Get("Content-Type"); ct == "" {
				t.Error("API rejection should be a JSON body, not a redirect")
			}
		})
	}
}

func TestGateAllowsPublicReads(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{
		"/api/projects",
		"/api/skills",
		"/api/about",
		"/api/experiences",
		"/api/educations",
		"/api/socials",
		"/api/site-config",
	} {
		rec := env.do(t, http.MethodGet, path, "")
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s: status = %d, want 200, body %s", path, rec.Code, rec.Body.String())
		}
	}
}

func TestGateRedirectsAdminUI(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/admin", "/admin/projects", "/fr/admin"} {
		rec := env.do(t, http.MethodGet, path, "")
		if rec.Code != http.StatusTemporaryRedirect {
			t.Errorf("GET %s: status = %d, want 307", path, rec.Code)
			continue
		}
		if loc := rec.Header().Get("Location"); loc != "/login" {
			t.Errorf("GET %s: Location = %q, want /login", path, loc)
		}
	}
}

func TestGateRejectsExpiredToken(t *testing.T) {
	env := newTestEnv(t)

	// Minted far enough in the past to be expired now.
	token, _, err := env.sessions.Mint(time.Now().Add(-48 * time.Hour))
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}

	rec := env.do(t, http.MethodPost, "/api/projects",
		`{"title": "x", "description": "y", "category": "z"}`,
		&http.Cookie{Name: auth.CookieName, Value: token})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401, body %s", rec.Code, rec.Body.String())
	}
}

func TestHTTPLoggingMiddlewarePassthrough(t *testing.T) {
	// Both logger modes must leave status and body untouched.
	for _, production := range []bool{true, false} {
		mw := HTTPLoggingMiddleware(production)
		handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("down"))
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/projects", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("production=%v: status = %d, want 503", production, rec.Code)
		}
		if rec.Body.String() != "down" {
			t.Errorf("production=%v: body = %q", production, rec.Body.String())
		}
	}
}

func TestBearerHeaderFallback(t *testing.T) {
	env := newTestEnv(t)

	token, _, err := env.sessions.Mint(time.Now())
	if err != nil {
		t.Fatalf("minting token: %v", err)
	}

	rec := env.do(t, http.MethodGet, "/api/contact", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("without header: status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/contact", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recHeader := httptest.NewRecorder()
	env.router.ServeHTTP(recHeader, req)
	if recHeader.Code != http.StatusOK {
		t.Fatalf("with bearer header: status = %d, body %s", recHeader.Code, recHeader.Body.String())
	}
}
