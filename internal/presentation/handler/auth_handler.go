package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"vidvault/internal/application/usecase"
	"vidvault/internal/application/usecase/abstraction"
	"vidvault/internal/domain/dto"
	"vidvault/internal/domain/entity"
	"vidvault/internal/presentation"
	"vidvault/pkg/logger"
)

type AuthHandler struct {
	auth abstraction.Authenticator
}

func NewAuthHandler(auth abstraction.Authenticator) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// HandleRegister handles POST /api/register requests.
func (h *AuthHandler) HandleRegister(c echo.Context) error {
	var req dto.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.AuthResponse{
			Success: false, Message: "invalid request body",
		})
	}

	if err := h.auth.Register(c.Request().Context(), req); err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusOK, dto.AuthResponse{
				Success: false, Message: verr.Message,
			})
		}

		logger.Error("registration failed", "err", err)

		return c.JSON(http.StatusInternalServerError, dto.AuthResponse{
			Success: false, Message: "registration failed, please try again later",
		})
	}

	return c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true, Message: "Account created successfully! Please login.",
	})
}

// HandleLogin handles POST /api/login requests; a successful login sets the
// session cookie.
func (h *AuthHandler) HandleLogin(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, dto.AuthResponse{
			Success: false, Message: "invalid request body",
		})
	}

	token, err := h.auth.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			return c.JSON(http.StatusOK, dto.AuthResponse{
				Success: false, Message: "Invalid username or password",
			})
		}

		logger.Error("login failed", "err", err)

		return c.JSON(http.StatusInternalServerError, dto.AuthResponse{
			Success: false, Message: "login failed, please try again later",
		})
	}

	c.SetCookie(&http.Cookie{
		Name:     presentation.SessionCookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return c.JSON(http.StatusOK, dto.AuthResponse{Success: true, Message: "Login successful"})
}

// HandleLogout handles POST /api/logout requests.
func (h *AuthHandler) HandleLogout(c echo.Context) error {
	if cookie, err := c.Cookie(presentation.SessionCookie); err == nil && cookie.Value != "" {
		if err := h.auth.Logout(c.Request().Context(), cookie.Value); err != nil {
			logger.Error("logout failed to revoke session", "err", err)
		}
	}

	c.SetCookie(&http.Cookie{
		Name:     presentation.SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})

	return c.JSON(http.StatusOK, dto.AuthResponse{Success: true})
}
