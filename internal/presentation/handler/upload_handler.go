package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"vidvault/internal/application/usecase/abstraction"
	"vidvault/internal/domain/entity"
	"vidvault/internal/presentation/middleware"
	"vidvault/pkg/logger"
)

// uploadField is the multipart form field carrying the video file.
const uploadField = "video"

type UploadHandler struct {
	ingestor abstraction.Ingestor
}

func NewUploadHandler(ingestor abstraction.Ingestor) *UploadHandler {
	return &UploadHandler{ingestor: ingestor}
}

// Handle handles POST /upload requests.
func (h *UploadHandler) Handle(c echo.Context) error {
	viewerID := middleware.ViewerID(c)

	fileHeader, err := c.FormFile(uploadField)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "no video file provided",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		logger.Error("failed to open multipart file", "err", err)

		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to read upload",
		})
	}
	defer src.Close()

	result, err := h.ingestor.Ingest(c.Request().Context(), viewerID,
		fileHeader.Filename, fileHeader.Size, src)
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error":  verr.Message,
				"reason": verr.Reason,
			})
		}

		logger.Error("upload failed", "err", err)

		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to upload file, please try again later",
		})
	}

	return c.JSON(http.StatusOK, map[string]string{
		"message": "Video uploaded successfully",
		"id":      result.ID,
	})
}
