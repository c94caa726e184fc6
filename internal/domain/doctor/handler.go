package doctor

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/neurohealth/neuroscreen/internal/platform/auth"
)

type Handler struct {
	svc    *Service
	issuer *auth.TokenIssuer
}

func NewHandler(svc *Service, issuer *auth.TokenIssuer) *Handler {
	return &Handler{svc: svc, issuer: issuer}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/doctors/login", h.Login)
	api.GET("/hospitals", h.ListHospitals)

	protected := api.Group("", auth.RequireDoctor(h.issuer))
	protected.GET("/doctors/me", h.Me)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token  string `json:"token"`
	Doctor Doctor `json:"doctor"`
}

func (h *Handler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	doc, err := h.svc.Authenticate(req.Username, req.Password)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := h.issuer.Issue(doc.Username, doc.Name, doc.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to issue token")
	}

	return c.JSON(http.StatusOK, loginResponse{Token: token, Doctor: *doc})
}

func (h *Handler) Me(c echo.Context) error {
	claims := auth.DoctorFromContext(c)
	if claims == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "not logged in")
	}
	doc, err := h.svc.GetByName(claims.Name)
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "doctor not found")
	}
	return c.JSON(http.StatusOK, doc)
}

func (h *Handler) ListHospitals(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Hospitals())
}
