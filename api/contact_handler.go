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
	"github.com/bcheng/portfolio-backend/services"
)

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	mailer      *services.Mailer
}

func newContactHandler(contactRepo *database.ContactRepo, mailer *services.Mailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		mailer:      mailer,
	}
}

// getAllContacts lists the admin inbox, newest first, with an unread count.
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		unreadOnly := q.Get("unread") == "true"
		limit := intQuery(q.Get("limit"), 50)

		contacts, err := h.contactRepo.FindAll(unreadOnly, limit)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("list", "contacts", err))
			return
		}

		unreadCount, err := h.contactRepo.CountUnread()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count unread", "contacts", err))
			return
		}

		if admin, ok := adminUserFromCtx(r.Context()); ok {
			h.logger.Debug().Str("admin", admin).Int64("unread", unreadCount).Msg("inbox viewed")
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{
			"contacts":    contacts,
			"unreadCount": unreadCount,
			"total":       len(contacts),
		})
	}
}

// createContact handles the public contact form: validate, persist, then
// notify by email. The email is best effort; the message is already stored,
// so a delivery failure only logs.
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload contactCreate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		contact := models.Contact{
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
			Email:     payload.Email,
			Phone:     payload.Phone,
			Subject:   payload.Subject,
			Message:   payload.Message,
		}

		if err := h.contactRepo.Add(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact", err))
			return
		}

		if err := h.mailer.SendContactNotification(contact); err != nil {
			h.logger.Warn().Err(err).Str("contactID", contact.ID.String()).
				Msg("contact notification email failed")
		}

		h.responder.WriteJSON(w, http.StatusCreated, map[string]any{"contact": contact})
	}
}

// updateContact only toggles the read flag; nothing else on a message is
// editable.
func (h contactHandler) updateContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := uuid.Parse(chi.URLParam(r, "contactID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contactID"))
			return
		}

		contact, err := h.contactRepo.FindByID(contactID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact", err))
			return
		}
		if contact == nil {
			h.responder.WriteError(w, errs.NewNotFoundError("contact not found"))
			return
		}

		var payload contactUpdate
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if payload.Read != nil {
			contact.Read = *payload.Read
		}

		if err := h.contactRepo.Update(contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"contact": contact})
	}
}

func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := uuid.Parse(chi.URLParam(r, "contactID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contactID"))
			return
		}

		if err := h.contactRepo.Delete(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact", err))
			return
		}

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}
