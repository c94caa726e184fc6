package patient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/neurohealth/neuroscreen/internal/platform/auth"
)

func newTestHandler() (*Handler, *echo.Echo) {
	svc, _ := newTestService()
	issuer := auth.NewTokenIssuer("test-secret", time.Hour)
	h := NewHandler(svc, issuer)
	e := echo.New()
	return h, e
}

func TestHandler_Register(t *testing.T) {
	h, e := newTestHandler()

	body := `{"name":"Asha","age":45,"blood_group":"O+","phone":"9876543210","assigned_doctor":"Dr. Devi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var p Patient
	json.Unmarshal(rec.Body.Bytes(), &p)
	if p.Name != "Asha" {
		t.Errorf("expected Asha, got %s", p.Name)
	}
	if len(p.PatientID) != 6 {
		t.Errorf("expected 6-digit id, got %q", p.PatientID)
	}
}

func TestHandler_Register_BadRequest(t *testing.T) {
	h, e := newTestHandler()

	body := `{"name":"Asha","age":45,"blood_group":"O+","phone":"123","assigned_doctor":"Dr. Devi"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/patients", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Register(c); err == nil {
		t.Error("expected error for invalid phone")
	}
}

func TestHandler_GetNotFound(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("999999")

	err := h.Get(c)
	if err == nil {
		t.Fatal("expected error")
	}
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_AddVisit(t *testing.T) {
	h, e := newTestHandler()

	p, err := h.svc.Register(httptest.NewRequest(http.MethodGet, "/", nil).Context(), RegisterInput{
		Name: "Asha", Age: 45, BloodGroup: "O+", Phone: "9876543210", AssignedDoctor: "Dr. Devi",
	})
	if err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(p.PatientID)

	if err := h.AddVisit(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Errorf("expected 201, got %d", rec.Code)
	}

	var resp struct {
		VisitIndex int `json:"visit_index"`
	}
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.VisitIndex != 0 {
		t.Errorf("expected visit index 0, got %d", resp.VisitIndex)
	}
}

func TestHandler_DeleteVisit_InvalidIndex(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id", "index")
	c.SetParamValues("123456", "abc")

	if err := h.DeleteVisit(c); err == nil {
		t.Error("expected error for non-numeric index")
	}
}
