package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidvault/internal/application/usecase/abstraction"
	"vidvault/internal/presentation"
)

// Auth requires a valid session and stores the viewer id in the request
// context; requests without one are rejected with 401.
func Auth(auth abstraction.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID := resolveViewer(c, auth)
			if userID == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "unauthorized",
				})
			}

			c.Set(presentation.UserIDKey, userID)

			return next(c)
		}
	}
}

// OptionalAuth resolves the viewer when a session is present but lets the
// request through either way. Handlers see an empty viewer id when the
// session is missing or invalid.
func OptionalAuth(auth abstraction.Authenticator) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if userID := resolveViewer(c, auth); userID != "" {
				c.Set(presentation.UserIDKey, userID)
			}

			return next(c)
		}
	}
}

func resolveViewer(c echo.Context, auth abstraction.Authenticator) string {
	cookie, err := c.Cookie(presentation.SessionCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}

	userID, err := auth.Resolve(c.Request().Context(), cookie.Value)
	if err != nil {
		return ""
	}

	return userID
}

// ViewerID reads the viewer id the auth middleware stored, empty when the
// request is unauthenticated.
func ViewerID(c echo.Context) string {
	userID, _ := c.Get(presentation.UserIDKey).(string)

	return userID
}
