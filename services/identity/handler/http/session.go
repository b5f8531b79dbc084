package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
	"github.com/urbancabz/console/services/identity"
)

// SessionHandler handles HTTP requests for stored operator sessions
type SessionHandler struct {
	sessionUC  identity.SessionUC
	identityUC identity.IdentityUC
}

// NewSessionHandler creates a new session HTTP handler
func NewSessionHandler(sessionUC identity.SessionUC, identityUC identity.IdentityUC) *SessionHandler {
	return &SessionHandler{
		sessionUC:  sessionUC,
		identityUC: identityUC,
	}
}

// Login handles POST /api/session
func (h *SessionHandler) Login(c echo.Context) error {
	var req models.SessionRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body: "+err.Error())
	}

	session, err := h.sessionUC.Login(appcontext.FromEcho(c), req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	setSessionCookie(c, session)
	return utils.SuccessResponse(c, http.StatusCreated, "Logged in", session)
}

// Session handles GET /api/session
func (h *SessionHandler) Session(c echo.Context) error {
	session, err := h.sessionUC.Session(appcontext.FromEcho(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", session)
}

// Logout handles DELETE /api/session?user_type=
func (h *SessionHandler) Logout(c echo.Context) error {
	ctx := appcontext.FromEcho(c)

	userType := models.UserType(strings.ToLower(c.QueryParam("user_type")))
	if userType == "" {
		current, err := h.sessionUC.CurrentUserType(ctx)
		if err != nil {
			clearSessionCookie(c)
			return utils.SuccessResponse(c, http.StatusOK, "Already logged out", nil)
		}
		userType = current
	}

	if err := h.sessionUC.Logout(ctx, userType); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	if _, err := h.sessionUC.CurrentUserType(ctx); err != nil {
		clearSessionCookie(c)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged out", map[string]string{
		"redirect": userType.LoginPath(),
	})
}

// Me handles GET /api/admin/me
func (h *SessionHandler) Me(c echo.Context) error {
	me, err := h.identityUC.Me(appcontext.FromEcho(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", me)
}

// setSessionCookie hands the client its session id, as a cookie for browsers and
// as a header for API clients
func setSessionCookie(c echo.Context, session *models.Session) {
	cookie := &http.Cookie{
		Name:     appcontext.SessionCookie,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
	}
	if session.ExpiresAt != nil {
		cookie.Expires = *session.ExpiresAt
	}
	c.SetCookie(cookie)
	c.Response().Header().Set(appcontext.HeaderSessionID, session.ID)
}

func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     appcontext.SessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   c.Scheme() == "https",
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})
}
