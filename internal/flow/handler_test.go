package flow

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

func newTestHandler(t *testing.T) (*Handler, *echo.Echo) {
	t.Helper()
	m := newTestMachine(t)
	return NewHandler(m, NewSessionManager(time.Hour)), echo.New()
}

func TestHandler_CreateSession(t *testing.T) {
	h, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Create(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp createResponse
	json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp.SessionID == "" {
		t.Error("expected a session id")
	}
	if resp.View.Page != PagePatientRegister {
		t.Errorf("expected initial page, got %s", resp.View.Page)
	}
}

func TestHandler_ActAndView(t *testing.T) {
	h, e := newTestHandler(t)

	id, _ := h.sessions.Create()

	body := `{"name":"register","register":{"name":"Asha","age":45,"blood_group":"O+","phone":"9876543210","assigned_doctor":"Dr. Devi"}}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	if err := h.Act(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var view View
	json.Unmarshal(rec.Body.Bytes(), &view)
	if view.Page != PageHome {
		t.Errorf("expected home after registration, got %s (%s)", view.Page, view.Message)
	}
	if view.Patient == nil || view.Patient.Name != "Asha" {
		t.Errorf("expected registered patient in view, got %+v", view.Patient)
	}
}

func TestHandler_UnknownSession(t *testing.T) {
	h, e := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("missing")

	err := h.View(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestHandler_ActRequiresName(t *testing.T) {
	h, e := newTestHandler(t)
	id, _ := h.sessions.Create()

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(id)

	err := h.Act(c)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
