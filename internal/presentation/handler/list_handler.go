package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"vidvault/internal/application/usecase/abstraction"
	"vidvault/internal/domain/dto"
	"vidvault/internal/presentation"
	"vidvault/internal/presentation/middleware"
	"vidvault/pkg/logger"
)

type ListHandler struct {
	cataloger abstraction.Cataloger
}

func NewListHandler(cataloger abstraction.Cataloger) *ListHandler {
	return &ListHandler{cataloger: cataloger}
}

// Handle handles GET /videos/all requests. Anonymous viewers get an empty
// list, never a 401.
func (h *ListHandler) Handle(c echo.Context) error {
	scope := c.QueryParam(presentation.ScopeQuery)
	if scope == "" {
		scope = abstraction.ScopeAll
	}

	views, err := h.cataloger.List(c.Request().Context(),
		middleware.ViewerID(c), scope)
	if err != nil {
		logger.Error("listing videos failed", "err", err)

		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to list videos",
		})
	}

	if views == nil {
		views = []dto.VideoView{}
	}

	return c.JSON(http.StatusOK, views)
}
