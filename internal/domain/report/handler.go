package report

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/neurohealth/neuroscreen/internal/domain/assessment"
	"github.com/neurohealth/neuroscreen/internal/domain/patient"
)

// Handler serves report downloads for completed visits.
type Handler struct {
	patients *patient.Service
	now      func() time.Time
}

func NewHandler(patients *patient.Service) *Handler {
	return &Handler{patients: patients, now: time.Now}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.GET("/patients/:id/visits/:index/report", h.Download)
}

func (h *Handler) Download(c echo.Context) error {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid visit index")
	}

	p, err := h.patients.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "patient not found")
	}
	if index < 0 || index >= len(p.Visits) {
		return echo.NewHTTPError(http.StatusNotFound, "visit not found")
	}
	ma := p.Visits[index].MultimodalAnalysis
	if ma == nil {
		return echo.NewHTTPError(http.StatusConflict, "visit has no analysis results")
	}

	rec := assessment.Recommend(p.Visits[index].DoctorAssessment, ma.CombinedProbs)
	doc := Build(p, ma.CombinedProbs, rec.PrimaryConcern, rec.Confidence, h.now())

	c.Response().Header().Set(echo.HeaderContentDisposition,
		`attachment; filename="`+Filename(p.PatientID, h.now())+`"`)
	return c.JSONPretty(http.StatusOK, doc, "  ")
}
