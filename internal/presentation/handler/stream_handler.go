package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"vidvault/internal/application/usecase/abstraction"
	"vidvault/internal/domain/entity"
	"vidvault/internal/presentation"
	"vidvault/internal/presentation/middleware"
	"vidvault/pkg/byterange"
	"vidvault/pkg/logger"
)

type StreamHandler struct {
	streamer abstraction.Streamer
}

func NewStreamHandler(streamer abstraction.Streamer) *StreamHandler {
	return &StreamHandler{streamer: streamer}
}

// Handle handles GET /stream/:id requests. It advertises byte-range support
// on every response and answers 200, 206 or 416 depending on the Range
// header, per RFC 7233 single-range semantics.
func (h *StreamHandler) Handle(c echo.Context) error {
	videoID := c.Param(presentation.VideoIDParam)
	rangeHeader := c.Request().Header.Get("Range")

	stream, err := h.streamer.Stream(c.Request().Context(),
		middleware.ViewerID(c), videoID, rangeHeader)
	if err != nil {
		switch {
		case errors.Is(err, entity.ErrUnauthorized):
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"error": "unauthorized",
			})
		case errors.Is(err, entity.ErrNotFound):
			return c.JSON(http.StatusNotFound, map[string]string{
				"error": "Video not found",
			})
		default:
			logger.Error("stream failed", "id", videoID, "err", err)

			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "failed to stream video",
			})
		}
	}

	c.Response().Header().Set("Accept-Ranges", "bytes")

	res := stream.Resolution
	switch res.Kind {
	case byterange.Unsatisfiable:
		c.Response().Header().Set("Content-Range",
			fmt.Sprintf("bytes */%d", stream.TotalSize))

		return c.NoContent(http.StatusRequestedRangeNotSatisfiable)

	case byterange.Partial:
		defer stream.Body.Close()

		c.Response().Header().Set("Content-Range",
			fmt.Sprintf("bytes %d-%d/%d", res.Start, res.End, stream.TotalSize))
		c.Response().Header().Set("Content-Length",
			fmt.Sprintf("%d", res.Length()))

		return c.Stream(http.StatusPartialContent, stream.ContentType,
			io.LimitReader(stream.Body, res.Length()))

	default:
		defer stream.Body.Close()

		c.Response().Header().Set("Content-Length",
			fmt.Sprintf("%d", stream.TotalSize))

		return c.Stream(http.StatusOK, stream.ContentType, stream.Body)
	}
}
