package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/jsasing/portfolio-backend/auth"
	"github.com/jsasing/portfolio-backend/config"
	"github.com/jsasing/portfolio-backend/errs"
)

type authHandler struct {
	responder     Responder
	logger        zerolog.Logger
	adminUsername string
	passwordHash  string
	tokenSecret   string
	secureCookies bool
}

func newAuthHandler(cfg map[string]string) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		adminUsername: config.GetString(cfg, "ADMIN_USERNAME", "admin"),
		passwordHash:  config.GetString(cfg, "ADMIN_PASSWORD_HASH", ""),
		tokenSecret:   config.GetString(cfg, "TOKEN_SECRET", ""),
		secureCookies: config.GetBool(cfg, "SECURE_COOKIES", true),
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// login verifies the admin credentials and sets the session cookie
// @Summary Admin login
// @Description Verifies credentials and issues an http-only session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Admin credentials"
// @Success 200 {object} map[string]string "Login confirmation"
// @Failure 401 {object} ErrorResponse "Unauthorized - Invalid credentials"
// @Router /auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if h.passwordHash == "" || h.tokenSecret == "" {
			h.logger.Error().Msg("admin credentials are not configured")
			h.responder.WriteError(w, errs.NewInternalError("authentication is not configured"))
			return
		}

		if req.Username != h.adminUsername || !auth.VerifyPassword(h.passwordHash, req.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid username or password"))
			return
		}

		token, err := auth.SignToken(h.tokenSecret, req.Username)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     auth.TokenCookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(auth.TokenTTL),
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, map[string]string{
			"status":   "success",
			"username": req.Username,
		})
	}
}

// logout clears the session cookie
// @Summary Admin logout
// @Description Expires the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]string "Logout confirmation"
// @Router /auth/logout [post]
func (h authHandler) logout() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     auth.TokenCookieName,
			Value:    "",
			Path:     "/",
			Expires:  time.Unix(0, 0),
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		})

		h.responder.WriteJSON(w, map[string]string{
			"status": "success",
		})
	}
}
