package api

import (
	"net/http"
	"testing"

	"github.com/bcheng/portfolio-backend/auth"
)

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login",
		`{"username": "admin", "password": "correct horse battery staple"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			sessionCookie = c
		}
	}
	if sessionCookie == nil {
		t.Fatal("login should set the session cookie")
	}
	if !sessionCookie.HttpOnly {
		t.Error("session cookie should be HttpOnly")
	}

	// The minted cookie authorizes a protected write.
	rec = env.do(t, http.MethodPost, "/api/skills",
		`{"title": "Go", "category": "languages", "rating": 5}`, sessionCookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("write with session: status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	env := newTestEnv(t)

	cases := []struct {
		name string
		body string
	}{
		{"wrong password", `{"username": "admin", "password": "nope"}`},
		{"wrong username", `{"username": "root", "password": "correct horse battery staple"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/auth/login", tc.body)
			if rec.Code != http.StatusUnauthorized {
				t.Fatalf("status = %d, want 401, body %s", rec.Code, rec.Body.String())
			}
			for _, c := range rec.Result().Cookies() {
				if c.Name == auth.CookieName {
					t.Error("failed login must not set the session cookie")
				}
			}
		})
	}
}

func TestLoginValidation(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/auth/login", `{"username": "admin"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t)

	rec := env.do(t, http.MethodPost, "/api/auth/logout", "", cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var cleared *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			cleared = c
		}
	}
	if cleared == nil {
		t.Fatal("logout should rewrite the session cookie")
	}
	if cleared.MaxAge >= 0 {
		t.Errorf("cookie MaxAge = %d, want negative", cleared.MaxAge)
	}
}

func TestAuthCheck(t *testing.T) {
	env := newTestEnv(t)

	var body struct {
		Authenticated bool `json:"authenticated"`
	}

	rec := env.do(t, http.MethodGet, "/api/auth/check", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	decodeBody(t, rec, &body)
	if body.Authenticated {
		t.Error("no cookie should report authenticated=false")
	}

	rec = env.do(t, http.MethodGet, "/api/auth/check", "", env.authCookie(t))
	decodeBody(t, rec, &body)
	if !body.Authenticated {
		t.Error("valid cookie should report authenticated=true")
	}

	rec = env.do(t, http.MethodGet, "/api/auth/check", "",
		&http.Cookie{Name: auth.CookieName, Value: "garbage"})
	decodeBody(t, rec, &body)
	if body.Authenticated {
		t.Error("garbage cookie should report authenticated=false")
	}
}
