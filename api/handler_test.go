package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/bcheng/portfolio-backend/auth"
	"github.com/bcheng/portfolio-backend/config"
	"github.com/bcheng/portfolio-backend/database"
)

// testEnv wires a full router against an in-memory sqlite database so
// handler tests go through routing, middleware and the store exactly like
// production traffic.
type testEnv struct {
	router   *chi.Mux
	db       database.Database
	sessions *auth.Sessions
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	cfg := &config.Config{
		Port:            "0",
		Env:             "test",
		AdminUsername:   "admin",
		AdminPassword:   "correct horse battery staple",
		SessionSecret:   "test-session-secret",
		SessionTTL:      time.Hour,
		AcceptedOrigins: []string{"*"},
	}

	// A named shared-cache database keeps the schema visible across pooled
	// connections while isolating tests from each other.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	db := database.New(gormDB)
	if err := db.AutoMigrate(); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	sessions, err := auth.NewSessions(cfg)
	if err != nil {
		t.Fatalf("initializing sessions: %v", err)
	}

	return &testEnv{
		router:   newRouter(cfg, db, sessions),
		db:       db,
		sessions: sessions,
	}
}

// authCookie mints a valid session cookie without going through the login
// endpoint.
func (e *testEnv) authCookie(t *testing.T) *http.Cookie {
	t.Helper()

	token, _, err := e.sessions.Mint(time.Now())
	if err != nil {
		t.Fatalf("minting session token: %v", err)
	}
	return &http.Cookie{Name: auth.CookieName, Value: token}
}

func (e *testEnv) do(t *testing.T, method, path, body string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
}
