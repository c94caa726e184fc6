package media

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler exposes direct capture upload outside the screening flow, for
// clients that record before a session exists.
type Handler struct {
	store Saver
}

func NewHandler(store Saver) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/patients/:id/media/:kind", h.Upload)
}

func (h *Handler) Upload(c echo.Context) error {
	kind := c.Param("kind")
	if kind != KindVideo && kind != KindAudio {
		return echo.NewHTTPError(http.StatusBadRequest, "kind must be video or audio")
	}

	var payload CapturePayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	clip, err := h.store.Save(c.Request().Context(), c.Param("id"), kind, payload)
	if err != nil {
		if errors.Is(err, ErrEmptyPayload) || errors.Is(err, ErrInvalidPayload) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusCreated, clip)
}
