package flow

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler exposes the session API: create a session, read the current view,
// post an action.
type Handler struct {
	machine  *Machine
	sessions *SessionManager
}

func NewHandler(machine *Machine, sessions *SessionManager) *Handler {
	return &Handler{machine: machine, sessions: sessions}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/sessions", h.Create)
	api.GET("/sessions/:id", h.View)
	api.POST("/sessions/:id/actions", h.Act)
	api.DELETE("/sessions/:id", h.Delete)
}

type createResponse struct {
	SessionID string `json:"session_id"`
	View      View   `json:"view"`
}

func (h *Handler) Create(c echo.Context) error {
	id, st := h.sessions.Create()
	return c.JSON(http.StatusCreated, createResponse{
		SessionID: id,
		View:      h.machine.Render(st),
	})
}

func (h *Handler) View(c echo.Context) error {
	st, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	}
	return c.JSON(http.StatusOK, h.machine.Render(st))
}

func (h *Handler) Act(c echo.Context) error {
	st, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var act Action
	if err := c.Bind(&act); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if act.Name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "action name is required")
	}

	if err := h.machine.Do(c.Request().Context(), st, act); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, h.machine.Render(st))
}

func (h *Handler) Delete(c echo.Context) error {
	h.sessions.Delete(c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}
