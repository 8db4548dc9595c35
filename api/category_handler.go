package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bcheng/portfolio-backend/database"
	"github.com/bcheng/portfolio-backend/errs"
	"github.com/bcheng/portfolio-backend/models"
)

// Project and skill categories share the same payloads and behavior but are
// separate tables, so each gets its own handler.

type projectCategoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.ProjectCategoryRepo
}

func newProjectCategoryHandler(categoryRepo *database.ProjectCategoryRepo) projectCategoryHandler {
	logger := log.With().Str("handlerName", "projectCategoryHandler").Logger()

	return projectCategoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

func (h projectCategoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "project categories", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"categories": categories})
	}
}

func (h projectCategoryHandler) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"category": category})
	}
}

func (h projectCategoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload categoryCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		category := models.ProjectCategory{
			Key:   payload.Key,
			Label: payload.Label,
			Order: payload.Order,
		}

		if err := h.categoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project category", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, map[string]any{"category": category})
	}
}

// updateCategory changes label and ordering only; the key is the join value
// on projects and stays fixed.
func (h projectCategoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}

		var payload categoryUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Label != nil {
			category.Label = *payload.Label
		}
		if payload.Order != nil {
			category.Order = *payload.Order
		}

		if err := h.categoryRepo.Update(category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project category", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"category": category})
	}
}

func (h projectCategoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		if err := h.categoryRepo.Delete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project category", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

type skillCategoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.SkillCategoryRepo
}

func newSkillCategoryHandler(categoryRepo *database.SkillCategoryRepo) skillCategoryHandler {
	logger := log.With().Str("handlerName", "skillCategoryHandler").Logger()

	return skillCategoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

func (h skillCategoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "skill categories", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"categories": categories})
	}
}

func (h skillCategoryHandler) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"category": category})
	}
}

func (h skillCategoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload categoryCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		category := models.SkillCategory{
			Key:   payload.Key,
			Label: payload.Label,
			Order: payload.Order,
		}

		if err := h.categoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "skill category", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, map[string]any{"category": category})
	}
}

func (h skillCategoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "skill category", err))
			return
		}
		if category == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("category not found"))
			return
		}

		var payload categoryUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Label != nil {
			category.Label = *payload.Label
		}
		if payload.Order != nil {
			category.Order = *payload.Order
		}

		if err := h.categoryRepo.Update(category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "skill category", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"category": category})
	}
}

func (h skillCategoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		if err := h.categoryRepo.Delete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "skill category", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
