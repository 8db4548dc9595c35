package api

import (
	"net/http"
	"testing"

	"github.com/bcheng/portfolio-backend/models"
)

func TestGetAllSkillsGrouped(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t)

	for _, body := range []string{
		`{"title": "Go", "category": "languages", "rating": 5}`,
		`{"title": "TypeScript", "category": "languages", "rating": 4}`,
		`{"title": "Docker", "category": "devops", "rating": 4}`,
	} {
		rec := env.do(t, http.MethodPost, "/api/skills", body, cookie)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create: status = %d, body %s", rec.Code, rec.Body.String())
		}
	}

	rec := env.do(t, http.MethodGet, "/api/skills", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list: status = %d, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Skills        []models.Skill            `json:"skills"`
		GroupedSkills map[string][]models.Skill `json:"groupedSkills"`
	}
	decodeBody(t, rec, &body)
	if len(body.Skills) != 3 {
		t.Fatalf("skills = %d, want 3", len(body.Skills))
	}
	if len(body.GroupedSkills["languages"]) != 2 {
		t.Errorf("languages group = %d, want 2", len(body.GroupedSkills["languages"]))
	}
	if len(body.GroupedSkills["devops"]) != 1 {
		t.Errorf("devops group = %d, want 1", len(body.GroupedSkills["devops"]))
	}
}

func TestCreateSkillRatingBounds(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t)

	rec := env.do(t, http.MethodPost, "/api/skills",
		`{"title": "Go", "category": "languages", "rating": 9}`, cookie)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Fields map[string]string `json:"fields"`
	}
	decodeBody(t, rec, &body)
	if body.Fields["rating"] == "" {
		t.Errorf("fields should name rating, got %v", body.Fields)
	}
}
