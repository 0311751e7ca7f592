package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"vidvault/internal/application/usecase/abstraction"
	"vidvault/internal/domain/entity"
	"vidvault/internal/presentation"
	"vidvault/internal/presentation/middleware"
	"vidvault/pkg/logger"
)

type DeleteHandler struct {
	deleter abstraction.Deleter
}

func NewDeleteHandler(deleter abstraction.Deleter) *DeleteHandler {
	return &DeleteHandler{deleter: deleter}
}

// Handle handles DELETE /delete/:id requests. Only the owner may delete.
func (h *DeleteHandler) Handle(c echo.Context) error {
	videoID := c.Param(presentation.VideoIDParam)

	err := h.deleter.Delete(c.Request().Context(), middleware.ViewerID(c), videoID)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUnauthorized):
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "unauthorized",
			})
		case errors.Is(err, entity.ErrForbidden):
			return c.JSON(http.StatusForbidden, map[string]string{
				"error": "You can only delete your own videos",
			})
		case errors.Is(err, entity.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Video not found",
			})
		default:
			logger.Error("delete failed", "id", videoID, "err", err)

			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to delete video",
			})
		}
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Video deleted successfully",
	})
}
