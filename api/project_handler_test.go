package api

import (
	"net/http"
	"testing"

	"github.com/bcheng/portfolio-backend/models"
)

func TestGetAllProjectsEmpty(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/projects", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Projects []models.Project `json:"projects"`
	}
	decodeBody(t, rec, &body)
	if body.Projects == nil {
		t.Fatal("projects should decode to an empty slice, not null")
	}
	if len(body.Projects) != 0 {
		t.Fatalf("projects = %d, want 0", len(body.Projects))
	}
}

func TestCreateProjectDerivesSlug(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t)

	rec := env.do(t, http.MethodPost, "/api/projects",
		`{"title": "My Demo App!", "description": "A demo.", "category": "web"}`, cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Project models.Project `json:"project"`
	}
	decodeBody(t, rec, &body)
	if body.Project.Slug != "my-demo-app" {
		t.Errorf("slug = %q, want %q", body.Project.Slug, "my-demo-app")
	}
	if !body.Project.Published {
		t.Error("published should default to true")
	}
	if body.Project.Tags == nil {
		t.Error("tags should default to an empty slice")
	}
}

func TestCreateProjectDuplicateTitleSuffixesSlug(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t)

	payload := `{"title": "Demo", "description": "First.", "category": "web"}`
	for i, wantSlug := range []string{"demo", "demo-1", "demo-2"} {
		rec := env.do(t, http.MethodPost, "/api/projects", payload, cookie)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create %d: status = %d, body %s", i, rec.Code, rec.Body.String())
		}

		var body struct {
			Project models.Project `json:"project"`
		}
		decodeBody(t, rec, &body)
		if body.Project.Slug != wantSlug {
			t.Errorf("create %d: slug = %q, want %q", i, body.Project.Slug, wantSlug)
		}
	}
}

func TestCreateProjectValidation(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t)

	rec := env.do(t, http.MethodPost, "/api/projects", `{"title": "No description"}`, cookie)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Error  string            `json:"error"`
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, rec, &body)
	if body.Fields["description"] == "" {
		t.Errorf("fields should name description, got %v", body.Fields)
	}
	if body.Fields["category"] == "" {
		t.Errorf("fields should name category, got %v", body.Fields)
	}
}

func TestGetProjectNotFound(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodGet, "/api/projects/6ba7b810-9dad-11d1-80b4-00c04fd430c8", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body %s", rec.Code, rec.Body.String())
	}

	rec = env.do(t, http.MethodGet, "/api/projects/not-a-uuid", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id: status = %d, want 400", rec.Code)
	}
}

func TestUpdateProjectPartial(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t)

	rec := env.do(t, http.MethodPost, "/api/projects",
		`{"title": "Original", "description": "Before.", "category": "web", "featured": true}`, cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: status = %d, body %s", rec.Code, rec.Body.String())
	}
	var created struct {
		Project models.Project `json:"project"`
	}
	decodeBody(t, rec, &created)

	// Only description changes; title, slug and featured stay put.
	rec = env.do(t, http.MethodPut, "/api/projects/"+created.Project.ID.String(),
		`{"description": "After."}`, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("update: status = %d, body %s", rec.Code, rec.Body.String())
	}
	var updated struct {
		Project models.Project `json:"project"`
	}
	decodeBody(t, rec, &updated)
	if updated.Project.Description != "After." {
		t.Errorf("description = %q, want %q", updated.Project.Description, "After.")
	}
	if updated.Project.Title != "Original" {
		t.Errorf("title = %q, should be unchanged", updated.Project.Title)
	}
	if updated.Project.Slug != "original" {
		t.Errorf("slug = %q, should be immutable", updated.Project.Slug)
	}
	if !updated.Project.Featured {
		t.Error("featured should be unchanged")
	}

	// A body with only unknown fields is a no-op 200.
	rec = env.do(t, http.MethodPut, "/api/projects/"+created.Project.ID.String(),
		`{"bogus": 1}`, cookie)
	if rec.Code != http.StatusOK {
		t.Fatalf("no-op update: status = %d, body %s", rec.Code, rec.Body.String())
	}
}

func TestUpdateProjectNotFound(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t)

	rec := env.do(t, http.MethodPut, "/api/projects/6ba7b810-9dad-11d1-80b4-00c04fd430c8",
		`{"title": "X"}`, cookie)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404, body %s", rec.Code, rec.Body.String())
	}
}

func TestDeleteProjectIdempotent(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t)

	rec := env.do(t, http.MethodPost, "/api/projects",
		`{"title": "Doomed", "description": "Bye.", "category": "web"}`, cookie)
	var created struct {
		Project models.Project `json:"project"`
	}
	decodeBody(t, rec, &created)

	path := "/api/projects/" + created.Project.ID.String()
	for i := 0; i < 2; i++ {
		rec = env.do(t, http.MethodDelete, path, "", cookie)
		if rec.Code != http.StatusOK {
			t.Fatalf("delete %d: status = %d, body %s", i, rec.Code, rec.Body.String())
		}
	}

	rec = env.do(t, http.MethodGet, path, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("after delete: status = %d, want 404", rec.Code)
	}
}

func TestGetAllProjectsFilters(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t)

	env.do(t, http.MethodPost, "/api/projects",
		`{"title": "Visible", "description": "d", "category": "web", "featured": true}`, cookie)
	env.do(t, http.MethodPost, "/api/projects",
		`{"title": "Hidden", "description": "d", "category": "cli", "published": false}`, cookie)

	var body struct {
		Projects []models.Project `json:"projects"`
	}

	rec := env.do(t, http.MethodGet, "/api/projects", "")
	decodeBody(t, rec, &body)
	if len(body.Projects) != 1 || body.Projects[0].Title != "Visible" {
		t.Fatalf("default listing should hide unpublished, got %+v", body.Projects)
	}

	rec = env.do(t, http.MethodGet, "/api/projects?published=false", "")
	decodeBody(t, rec, &body)
	if len(body.Projects) != 2 {
		t.Fatalf("published=false should list all, got %d", len(body.Projects))
	}

	rec = env.do(t, http.MethodGet, "/api/projects?featured=true", "")
	decodeBody(t, rec, &body)
	if len(body.Projects) != 1 || !body.Projects[0].Featured {
		t.Fatalf("featured filter failed, got %+v", body.Projects)
	}

	rec = env.do(t, http.MethodGet, "/api/projects?category=cli&published=false", "")
	decodeBody(t, rec, &body)
	if len(body.Projects) != 1 || body.Projects[0].Category != "cli" {
		t.Fatalf("category filter failed, got %+v", body.Projects)
	}
}
