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

type siteConfigHandler struct {
	responder Responder
	logger    zerolog.Logger
	cfgRepo   *database.SiteConfigRepo
}

func newSiteConfigHandler(cfgRepo *database.SiteConfigRepo) siteConfigHandler {
	logger := log.With().Str("handlerName", "siteConfigHandler").Logger()

	return siteConfigHandler{
		responder: NewResponder(logger),
		logger:    logger,
		cfgRepo:   cfgRepo,
	}
}

func (h siteConfigHandler) getAllEntries() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := h.cfgRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "site config", err))
			return
		}

		// Flattened view saves the frontend a pass over the rows.
		settings := make(map[string]string, len(entries))
		for _, entry := range entries {
			settings[entry.Key] = entry.Value
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{
			"entries":  entries,
			"settings": settings,
		})
	}
}

func (h siteConfigHandler) getEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid entryID"))
			return
		}

		entry, err := h.cfgRepo.FindByID(entryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "site config entry", err))
			return
		}
		if entry == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("entry not found"))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"entry": entry})
	}
}

func (h siteConfigHandler) createEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload siteConfigCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		entry := models.SiteConfig{
			Key:   payload.Key,
			Value: payload.Value,
		}

		if err := h.cfgRepo.Add(&entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "site config entry", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusCreated, map[string]any{"entry": entry})
	}
}

func (h siteConfigHandler) updateEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid entryID"))
			return
		}

		entry, err := h.cfgRepo.FindByID(entryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "site config entry", err))
			return
		}
		if entry == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("entry not found"))
			return
		}

		var payload siteConfigUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Value != nil {
			entry.Value = *payload.Value
		}

		if err := h.cfgRepo.Update(entry); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "site config entry", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"entry": entry})
	}
}

func (h siteConfigHandler) deleteEntry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entryID, err := uuid.Parse(chi.URLParam(r, "entryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid entryID"))
			return
		}

		if err := h.cfgRepo.Delete(entryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "site config entry", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
