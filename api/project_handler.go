package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bcheng/portfolio-backend/database"
	"github.com/bcheng/portfolio-backend/errs"
	"github.com/bcheng/portfolio-backend/models"
	"github.com/bcheng/portfolio-backend/slugify"
)

type projectHandler struct {
	responder   Responder
	logger      zerolog.Logger
	projectRepo *database.ProjectRepo
}

func newProjectHandler(projectRepo *database.ProjectRepo) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		projectRepo: projectRepo,
	}
}

// getAllProjects lists projects. Filters: category, featured=true,
// published (default true, published=false disables), limit.
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		filter := database.ProjectFilter{
			Category:      q.Get("category"),
			FeaturedOnly:  q.Get("featured") == "true",
			PublishedOnly: q.Get("published") != "false",
			Limit:         intQuery(q.Get("limit"), 0),
		}

		projects, err := h.projectRepo.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "projects", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"projects": projects})
	}
}

func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"project": project})
	}
}

// createProject validates the payload, derives a unique slug from the title
// and inserts. The uniqueness probe runs before the write; if a concurrent
// create still wins the slug, the duplicate-key error re-runs the probe
// rather than failing the request.
func (h projectHandler) createProject() http.HandlerFunc {
	const maxSlugRetries = 3

	return func(w http.ResponseWriter, r *http.Request) {
		var payload projectCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		published := true
		if payload.Published != nil {
			published = *payload.Published
		}
		tags := payload.Tags
		if tags == nil {
			tags = []string{}
		}

		candidate := slugify.Candidate(payload.Title)

		var project models.Project
		var lastErr error
		for attempt := 0; attempt <= maxSlugRetries; attempt++ {
			uniqueSlug, err := slugify.Unique(candidate, h.projectRepo.SlugExists)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("probe slug for", "project", err))
				return
			}

			project = models.Project{
				Title:       payload.Title,
				Slug:        uniqueSlug,
				Description: payload.Description,
				ShortDesc:   payload.ShortDesc,
				Tags:        tags,
				Category:    payload.Category,
				ImageURL:    payload.ImageURL,
				GithubURL:   payload.GithubURL,
				LiveURL:     payload.LiveURL,
				Featured:    payload.Featured,
				Published:   published,
				Order:       payload.Order,
			}

			lastErr = h.projectRepo.Add(&project)
			if lastErr == nil {
				break
			}
			if !errs.IsDuplicateKey(lastErr) {
				h.responder.WriteError(w, wrapDatabaseError("create", "project", lastErr))
				return
			}
			h.logger.Warn().Str("slug", uniqueSlug).Msg("slug taken by concurrent create, retrying")
		}
		if lastErr != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", lastErr))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, map[string]any{"project": project})
	}
}

// updateProject merges only the fields present in the body. Slug and id are
// immutable. A body with no recognized fields is a no-op 200.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}
		if project == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("project not found"))
			return
		}

		var payload projectUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Title != nil {
			project.Title = *payload.Title
		}
		if payload.Description != nil {
			project.Description = *payload.Description
		}
		if payload.ShortDesc != nil {
			project.ShortDesc = payload.ShortDesc
		}
		if payload.Tags != nil {
			project.Tags = *payload.Tags
		}
		if payload.Category != nil {
			project.Category = *payload.Category
		}
		if payload.ImageURL != nil {
			project.ImageURL = payload.ImageURL
		}
		if payload.GithubURL != nil {
			project.GithubURL = payload.GithubURL
		}
		if payload.LiveURL != nil {
			project.LiveURL = payload.LiveURL
		}
		if payload.Featured != nil {
			project.Featured = *payload.Featured
		}
		if payload.Published != nil {
			project.Published = *payload.Published
		}
		if payload.Order != nil {
			project.Order = *payload.Order
		}

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"project": project})
	}
}

// deleteProject is idempotent: deleting an absent id still succeeds.
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

// intQuery parses an integer query parameter, falling back on bad input.
func intQuery(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}
