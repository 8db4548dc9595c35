package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/bcheng/portfolio-backend/auth"
	"github.com/bcheng/portfolio-backend/errs"
)

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	sessions      *auth.Sessions
	secureCookies bool
}

func newAuthHandler(sessions *auth.Sessions, secureCookies bool) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		sessions:      sessions,
		secureCookies: secureCookies,
	}
}

// login verifies the admin credential pair and sets the session cookie.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginRequest
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}
		if err := payload.Validate(); err != nil {
			h.responder.WriteError(w, asValidationError(err))
			return
		}

		if !h.sessions.VerifyCredentials(payload.Username, payload.Password) {
			h.logger.Warn().Str("username", payload.Username).Msg("failed login attempt")
			h.responder.WriteError(w, errs.NewInvalidCredentialsError())
			return
		}

		token, expires, err := h.sessions.Mint(time.Now())
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to create session"))
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     auth.CookieName,
			Value:    token,
			Expires:  expires,
			Path:     "/",
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

// logout clears the session cookie.
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     auth.CookieName,
			Value:    "",
			Expires:  time.Now().Add(-1 * time.Hour),
			MaxAge:   -1,
			Path:     "/",
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
	}
}

// check reports whether the request carries a valid, unexpired session.
func (h authHandler) check() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, err := h.sessions.Validate(tokenFromRequest(r))
		h.responder.WriteJSON(w, http.StatusOK, map[string]any{
			"authenticated": err == nil,
		})
	}
}
