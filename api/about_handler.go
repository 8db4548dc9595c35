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

type aboutHandler struct {
	responder Responder
	logger    zerolog.Logger
	aboutRepo *database.AboutRepo
}

func newAboutHandler(aboutRepo *database.AboutRepo) aboutHandler {
	logger := log.With().Str("handlerName", "aboutHandler").Logger()

	return aboutHandler{
		responder: NewResponder(logger),
		logger:    logger,
		aboutRepo: aboutRepo,
	}
}

func (h aboutHandler) getAllSections() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publishedOnly := r.URL.Query().Get("published") != "false"

		sections, err := h.aboutRepo.FindAll(publishedOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "about sections", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"sections": sections})
	}
}

func (h aboutHandler) getSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID, err := uuid.Parse(chi.URLParam(r, "sectionID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid sectionID"))
			return
		}

		section, err := h.aboutRepo.FindByID(sectionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "about section", err))
			return
		}
		if section == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("section not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"section": section})
	}
}

func (h aboutHandler) createSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload aboutSectionCreate
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

		section := models.AboutSection{
			Key:       payload.Key,
			Title:     payload.Title,
			Content:   payload.Content,
			Published: published,
			Order:     payload.Order,
		}

		if err := h.aboutRepo.Add(&section); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "about section", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, map[string]any{"section": section})
	}
}

// updateSection merges provided fields. The section key is immutable after
// creation; the public pages look sections up by it.
func (h aboutHandler) updateSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID, err := uuid.Parse(chi.URLParam(r, "sectionID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid sectionID"))
			return
		}

		section, err := h.aboutRepo.FindByID(sectionID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "about section", err))
			return
		}
		if section == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("section not found"))
			return
		}

		var payload aboutSectionUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Title != nil {
			section.Title = *payload.Title
		}
		if payload.Content != nil {
			section.Content = *payload.Content
		}
		if payload.Published != nil {
			section.Published = *payload.Published
		}
		if payload.Order != nil {
			section.Order = *payload.Order
		}

		if err := h.aboutRepo.Update(section); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "about section", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"section": section})
	}
}

func (h aboutHandler) deleteSection() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sectionID, err := uuid.Parse(chi.URLParam(r, "sectionID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid sectionID"))
			return
		}

		if err := h.aboutRepo.Delete(sectionID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "about section", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
