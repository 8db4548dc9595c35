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

type socialHandler struct {
	responder  Responder
	logger     zerolog.Logger
	socialRepo *database.SocialRepo
}

func newSocialHandler(socialRepo *database.SocialRepo) socialHandler {
	logger := log.With().Str("handlerName", "socialHandler").Logger()

	return socialHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		socialRepo: socialRepo,
	}
}

func (h socialHandler) getAllSocials() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		publishedOnly := r.URL.Query().Get("published") != "false"

		socials, err := h.socialRepo.FindAll(publishedOnly)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "social links", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"socials": socials})
	}
}

func (h socialHandler) getSocial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		socialID, err := uuid.Parse(chi.URLParam(r, "socialID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid socialID"))
			return
		}

		social, err := h.socialRepo.FindByID(socialID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "social link", err))
			return
		}
		if social == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("social link not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"social": social})
	}
}

func (h socialHandler) createSocial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload socialLinkCreate
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

		social := models.SocialLink{
			Platform:  payload.Platform,
			URL:       payload.URL,
			Icon:      payload.Icon,
			Published: published,
			Order:     payload.Order,
		}

		if err := h.socialRepo.Add(&social); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "social link", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, map[string]any{"social": social})
	}
}

func (h socialHandler) updateSocial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		socialID, err := uuid.Parse(chi.URLParam(r, "socialID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid socialID"))
			return
		}

		social, err := h.socialRepo.FindByID(socialID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "social link", err))
			return
		}
		if social == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("social link not found"))
			return
		}

		var payload socialLinkUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Platform != nil {
			social.Platform = *payload.Platform
		}
		if payload.URL != nil {
			social.URL = *payload.URL
		}
		if payload.Icon != nil {
			social.Icon = payload.Icon
		}
		if payload.Published != nil {
			social.Published = *payload.Published
		}
		if payload.Order != nil {
			social.Order = *payload.Order
		}

		if err := h.socialRepo.Update(social); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "social link", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"social": social})
	}
}

func (h socialHandler) deleteSocial() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		socialID, err := uuid.Parse(chi.URLParam(r, "socialID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid socialID"))
			return
		}

		if err := h.socialRepo.Delete(socialID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "social link", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
