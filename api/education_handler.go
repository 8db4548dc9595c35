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

type educationHandler struct {
	responder     Responder
	logger        zerolog.Logger
	educationRepo *database.EducationRepo
}

func newEducationHandler(educationRepo *database.EducationRepo) educationHandler {
	logger := log.With().Str("handlerName", "educationHandler").Logger()

	return educationHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		educationRepo: educationRepo,
	}
}

func (h educationHandler) getAllEducations() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publishedOnly := r.URL.Query().Get("published") != "false"

		educations, err := h.educationRepo.FindAll(publishedOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "educations", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"educations": educations})
	}
}

func (h educationHandler) getEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		educationID, err := uuid.Parse(chi.URLParam(r, "educationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid educationID"))
			return
		}

		education, err := h.educationRepo.FindByID(educationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "education", err))
			return
		}
		if education == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("education not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"education": education})
	}
}

func (h educationHandler) createEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload educationCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		startDate, err := parseDate(payload.StartDate)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		education := models.Education{
			Title:       payload.Title,
			School:      payload.School,
			Location:    payload.Location,
			StartDate:   startDate,
			Description: payload.Description,
			Published:   true,
			Order:       payload.Order,
		}
		if payload.Published != nil {
			education.Published = *payload.Published
		}
		if payload.EndDate != nil {
			endDate, err := parseDate(*payload.EndDate)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
				return
			}
			education.EndDate = &endDate
		}

		if err := h.educationRepo.Add(&education); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "education", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, map[string]any{"education": education})
	}
}

func (h educationHandler) updateEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		educationID, err := uuid.Parse(chi.URLParam(r, "educationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid educationID"))
			return
		}

		education, err := h.educationRepo.FindByID(educationID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "education", err))
			return
		}
		if education == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("education not found"))
			return
		}

		var payload educationUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Title != nil {
			education.Title = *payload.Title
		}
		if payload.School != nil {
			education.School = *payload.School
		}
		if payload.Location != nil {
			education.Location = payload.Location
		}
		if payload.StartDate != nil {
			startDate, err := parseDate(*payload.StartDate)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
				return
			}
			education.StartDate = startDate
		}
		if payload.EndDate != nil {
			endDate, err := parseDate(*payload.EndDate)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
				return
			}
			education.EndDate = &endDate
		}
		if payload.Description != nil {
			education.Description = payload.Description
		}
		if payload.Published != nil {
			education.Published = *payload.Published
		}
		if payload.Order != nil {
			education.Order = *payload.Order
		}

		if err := h.educationRepo.Update(education); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "education", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"education": education})
	}
}

func (h educationHandler) deleteEducation() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		educationID, err := uuid.Parse(chi.URLParam(r, "educationID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid educationID"))
			return
		}

		if err := h.educationRepo.Delete(educationID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "education", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
