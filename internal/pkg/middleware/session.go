package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/urbancabz/console/internal/pkg/apperror"
	appcontext "github.com/urbancabz/console/internal/pkg/context"
	jwtpkg "github.com/urbancabz/console/internal/pkg/jwt"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/models"
	"github.com/urbancabz/console/internal/utils"
)

// HeaderUserType lets the UI pick which stored token a request acts with
const HeaderUserType = "X-User-Type"

// SessionStore is the part of the token store the middleware needs. Both calls
// read the client session id from ctx.
type SessionStore interface {
	// Token returns a non-expired token or apperror.ErrUnauthenticated
	Token(ctx context.Context, userType models.UserType) (string, error)
	CurrentUserType(ctx context.Context) (models.UserType, error)
}

// SessionMiddleware resolves the client session and its acting user type, and
// rejects requests without a live token with 401 and the login path of that user type.
func SessionMiddleware(store SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := appcontext.RequestSessionID(c)
			if sessionID == "" {
				return utils.RedirectResponse(c, "Please log in to continue", headerUserType(c).LoginPath())
			}

			ctx := appcontext.WithSessionID(c.Request().Context(), sessionID)
			userType := resolveUserType(ctx, c, store)

			token, err := store.Token(ctx, userType)
			if err != nil {
				if !errors.Is(err, apperror.ErrUnauthenticated) {
					logger.Warn("Session lookup failed",
						logger.String("user_type", string(userType)),
						logger.Err(err))
				}
				return utils.RedirectResponse(c, "Please log in to continue", userType.LoginPath())
			}

			operator := "unknown"
			if claims, err := jwtpkg.Parse(token); err == nil && claims.Subject() != "" {
				operator = claims.Subject()
			}

			c.Set(appcontext.EchoSessionIDKey, sessionID)
			c.Set(appcontext.EchoUserTypeKey, userType)
			c.Set(appcontext.EchoOperatorKey, operator)

			return next(c)
		}
	}
}

// RequireUserType lets through only requests SessionMiddleware resolved to one of
// allowed, answering 403 otherwise.
func RequireUserType(allowed ...models.UserType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userType, _ := c.Get(appcontext.EchoUserTypeKey).(models.UserType)
			for _, a := range allowed {
				if userType == a {
					return next(c)
				}
			}
			logger.Info("Rejected request for another user type",
				logger.String("user_type", string(userType)),
				logger.String("path", c.Path()))
			return utils.ForbiddenResponse(c, "This page is not available for your account")
		}
	}
}

func headerUserType(c echo.Context) models.UserType {
	if header := models.UserType(strings.ToLower(c.Request().Header.Get(HeaderUserType))); header.Valid() {
		return header
	}
	return models.UserTypeAdmin
}

func resolveUserType(ctx context.Context, c echo.Context, store SessionStore) models.UserType {
	if header := models.UserType(strings.ToLower(c.Request().Header.Get(HeaderUserType))); header.Valid() {
		return header
	}
	if current, err := store.CurrentUserType(ctx); err == nil && current.Valid() {
		return current
	}
	return models.UserTypeAdmin
}
