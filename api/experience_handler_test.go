package api

import (
	"net/http"
	"testing"

	"github.com/bcheng/portfolio-backend/models"
)

func TestCreateExperienceParsesDates(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t)

	rec := env.do(t, http.MethodPost, "/api/experiences",
		`{"title": "Backend Intern", "company": "Acme", "type": "internship",
		  "startDate": "2024-05-01", "endDate": "2024-08-30",
		  "description": "Built internal tooling.", "skills": ["Go", "Postgres"]}`, cookie)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Experience models.Experience `json:"experience"`
	}
	decodeBody(t, rec, &body)
	if got := body.Experience.StartDate.Format("2006-01-02"); got != "2024-05-01" {
		t.Errorf("startDate = %s, want 2024-05-01", got)
	}
	if body.Experience.EndDate == nil {
		t.Fatal("endDate should be set")
	}
	if len(body.Experience.Skills) != 2 {
		t.Errorf("skills = %d, want 2", len(body.Experience.Skills))
	}
}

func TestCreateExperienceRejectsBadDate(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t)

	rec := env.do(t, http.MethodPost, "/api/experiences",
		`{"title": "x", "company": "y", "startDate": "May 2024", "description": "z"}`, cookie)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body.String())
	}
}

func TestExperienceOrdering(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.authCookie(t)

	// Same explicit order: newer start date lists first.
	for _, body := range []string{
		`{"title": "Older", "company": "A", "startDate": "2022-01-01", "description": "d"}`,
		`{"title": "Newer", "company": "B", "startDate": "2024-01-01", "description": "d"}`,
	} {
		rec := env.do(t, http.MethodPost, "/api/experiences", body, cookie)
		if rec.Code != http.StatusCreated {
			t.Fatalf("create: status = %d, body %s", rec.Code, rec.Body.String())
		}
	}

	rec := env.do(t, http.MethodGet, "/api/experiences", "")
	var body struct {
		Experiences []models.Experience `json:"experiences"`
	}
	decodeBody(t, rec, &body)
	if len(body.Experiences) != 2 || body.Experiences[0].Title != "Newer" {
		t.Fatalf("ordering wrong, got %+v", body.Experiences)
	}
}
