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

type experienceHandler struct {
	responder      Responder
	logger         zerolog.Logger
	experienceRepo *database.ExperienceRepo
}

func newExperienceHandler(experienceRepo *database.ExperienceRepo) experienceHandler {
	logger := log.With().Str("handlerName", "experienceHandler").Logger()

	return experienceHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		experienceRepo: experienceRepo,
	}
}

func (h experienceHandler) getAllExperiences() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		publishedOnly := q.Get("published") != "false"
		limit := intQuery(q.Get("limit"), 0)

		experiences, err := h.experienceRepo.FindAll(publishedOnly, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "experiences", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"experiences": experiences})
	}
}

func (h experienceHandler) getExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		experience, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"experience": experience})
	}
}

func (h experienceHandler) createExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload experienceCreate
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

		experience := models.Experience{
			Title:       payload.Title,
			Company:     payload.Company,
			Location:    payload.Location,
			Type:        payload.Type,
			StartDate:   startDate,
			Description: payload.Description,
			Skills:      payload.Skills,
			Published:   true,
			Order:       payload.Order,
		}
		if experience.Skills == nil {
			experience.Skills = []string{}
		}
		if payload.Published != nil {
			experience.Published = *payload.Published
		}
		if payload.EndDate != nil {
			endDate, err := parseDate(*payload.EndDate)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
				return
			}
			experience.EndDate = &endDate
		}

		if err := h.experienceRepo.Add(&experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "experience", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, map[string]any{"experience": experience})
	}
}

func (h experienceHandler) updateExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		experience, err := h.experienceRepo.FindByID(experienceID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "experience", err))
			return
		}
		if experience == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("experience not found"))
			return
		}

		var payload experienceUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Title != nil {
			experience.Title = *payload.Title
		}
		if payload.Company != nil {
			experience.Company = *payload.Company
		}
		if payload.Location != nil {
			experience.Location = payload.Location
		}
		if payload.Type != nil {
			experience.Type = *payload.Type
		}
		if payload.StartDate != nil {
			startDate, err := parseDate(*payload.StartDate)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
				return
			}
			experience.StartDate = startDate
		}
		if payload.EndDate != nil {
			endDate, err := parseDate(*payload.EndDate)
			if err != nil {
				h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
				return
			}
			experience.EndDate = &endDate
		}
		if payload.Description != nil {
			experience.Description = *payload.Description
		}
		if payload.Skills != nil {
			experience.Skills = *payload.Skills
		}
		if payload.Published != nil {
			experience.Published = *payload.Published
		}
		if payload.Order != nil {
			experience.Order = *payload.Order
		}

		if err := h.experienceRepo.Update(experience); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "experience", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"experience": experience})
	}
}

func (h experienceHandler) deleteExperience() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		experienceID, err := uuid.Parse(chi.URLParam(r, "experienceID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid experienceID"))
			return
		}

		if err := h.experienceRepo.Delete(experienceID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "experience", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
