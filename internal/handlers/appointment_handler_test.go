package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/serenitylabs/medspa-scheduler/internal/domain/appointment"
	"github.com/serenitylabs/medspa-scheduler/internal/httperr"
	"github.com/serenitylabs/medspa-scheduler/internal/models"
	ucAppointment "github.com/serenitylabs/medspa-scheduler/internal/usecase/appointment"
)

type stubRepo struct {
	medspa      *models.Medspa
	services    []models.Service
	conflicts   []string
	appointment *models.Appointment
	listRows    []models.Appointment
}

func (s *stubRepo) GetMedspaByID(ctx context.Context, id string) (*models.Medspa, error) {
	if s.medspa == nil || s.medspa.ID != id {
		return nil, httperr.NotFoundError("medspa not found")
	}
	return s.medspa, nil
}

func (s *stubRepo) FindServicesByIDs(ctx context.Context, ids []string) ([]models.Service, error) {
	var found []models.Service
	for _, id := range ids {
		for _, svc := range s.services {
			if svc.ID == id {
				found = append(found, svc)
			}
		}
	}
	return found, nil
}

func (s *stubRepo) FindActiveOverlapping(ctx context.Context, medspaID string, start, end time.Time, serviceIDs []string) ([]string, error) {
	return s.conflicts, nil
}

func (s *stubRepo) CreateWithServices(ctx context.Context, ap *models.Appointment, serviceIDs []string) error {
	ap.ID = "created-id"
	return nil
}

func (s *stubRepo) GetAppointmentByID(ctx context.Context, id string) (*models.Appointment, error) {
	if s.appointment == nil || s.appointment.ID != id {
		return nil, httperr.NotFoundError("appointment not found")
	}
	return s.appointment, nil
}

func (s *stubRepo) UpdateAppointmentStatus(ctx context.Context, ap *models.Appointment) error {
	return nil
}

func (s *stubRepo) ListAppointments(ctx context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	return s.listRows, nil
}

func newTestRouter(repo *stubRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(repo, nil),
		ucAppointment.NewGetAppointment(repo),
		ucAppointment.NewUpdateAppointmentStatus(repo, nil),
		ucAppointment.NewListAppointments(repo),
	)

	r := gin.New()
	r.POST("/api/medspas/:medspa_id/appointments", h.Create)
	r.GET("/api/appointments", h.List)
	r.GET("/api/appointments/:appointment_id", h.Get)
	r.PATCH("/api/appointments/:appointment_id/status", h.UpdateStatus)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func futureStart() string {
	return time.Now().UTC().Add(24 * time.Hour).Format(time.RFC3339)
}

func TestCreateAppointment_Created(t *testing.T) {
	repo := &stubRepo{
		medspa: &models.Medspa{ID: "m1"},
		services: []models.Service{
			{ID: "s1", MedspaID: "m1", Price: 1000, Duration: 15},
			{ID: "s2", MedspaID: "m1", Price: 2000, Duration: 30},
		},
	}
	r := newTestRouter(repo)

	body := `{"start_time":"` + futureStart() + `","service_ids":["s1","s2"]}`
	w := doJSON(t, r, http.MethodPost, "/api/medspas/m1/appointments", body)

	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var got models.Appointment
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.TotalPrice != 3000 || got.TotalDuration != 45 {
		t.Fatalf("totals = %d/%d, want 3000/45", got.TotalPrice, got.TotalDuration)
	}
	if got.Status != "scheduled" {
		t.Fatalf("status = %q", got.Status)
	}
}

func TestCreateAppointment_MalformedBodyIs422(t *testing.T) {
	r := newTestRouter(&stubRepo{})
	w := doJSON(t, r, http.MethodPost, "/api/medspas/m1/appointments", `{"start_time":`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestCreateAppointment_EmptyServiceIDsIs422(t *testing.T) {
	r := newTestRouter(&stubRepo{})
	body := `{"start_time":"` + futureStart() + `","service_ids":[]}`
	w := doJSON(t, r, http.MethodPost, "/api/medspas/m1/appointments", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestCreateAppointment_BadTimestampIs422(t *testing.T) {
	r := newTestRouter(&stubRepo{})
	body := `{"start_time":"tomorrow-ish","service_ids":["s1"]}`
	w := doJSON(t, r, http.MethodPost, "/api/medspas/m1/appointments", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestCreateAppointment_UnknownMedspaIs404(t *testing.T) {
	r := newTestRouter(&stubRepo{})
	body := `{"start_time":"` + futureStart() + `","service_ids":["s1"]}`
	w := doJSON(t, r, http.MethodPost, "/api/medspas/ghost/appointments", body)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestCreateAppointment_OverlapIs409(t *testing.T) {
	repo := &stubRepo{
		medspa:    &models.Medspa{ID: "m1"},
		services:  []models.Service{{ID: "s1", MedspaID: "m1", Price: 1000, Duration: 15}},
		conflicts: []string{"other"},
	}
	r := newTestRouter(repo)
	body := `{"start_time":"` + futureStart() + `","service_ids":["s1"]}`
	w := doJSON(t, r, http.MethodPost, "/api/medspas/m1/appointments", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}

	var resp httperr.HTTPError
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if resp.Code != "conflict" {
		t.Fatalf("error_code = %q, want conflict", resp.Code)
	}
}

func TestCreateAppointment_PastStartIs400(t *testing.T) {
	repo := &stubRepo{
		medspa:   &models.Medspa{ID: "m1"},
		services: []models.Service{{ID: "s1", MedspaID: "m1", Price: 1000, Duration: 15}},
	}
	r := newTestRouter(repo)
	body := `{"start_time":"2020-01-01T10:00:00Z","service_ids":["s1"]}`
	w := doJSON(t, r, http.MethodPost, "/api/medspas/m1/appointments", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetAppointment_NotFoundIs404(t *testing.T) {
	r := newTestRouter(&stubRepo{})
	w := doJSON(t, r, http.MethodGet, "/api/appointments/ghost", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestUpdateStatus_UnknownLiteralIs422(t *testing.T) {
	r := newTestRouter(&stubRepo{})
	w := doJSON(t, r, http.MethodPatch, "/api/appointments/a1/status", `{"status":"done"}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestUpdateStatus_IllegalTransitionIs400(t *testing.T) {
	repo := &stubRepo{
		appointment: &models.Appointment{ID: "a1", MedspaID: "m1", Status: "completed"},
	}
	r := newTestRouter(repo)
	w := doJSON(t, r, http.MethodPatch, "/api/appointments/a1/status", `{"status":"canceled"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListAppointments_StatusFilterValidated(t *testing.T) {
	r := newTestRouter(&stubRepo{})
	w := doJSON(t, r, http.MethodGet, "/api/appointments?status=done", "")
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", w.Code)
	}
}

func TestListAppointments_EmptyListHasEmptyItems(t *testing.T) {
	r := newTestRouter(&stubRepo{})
	w := doJSON(t, r, http.MethodGet, "/api/appointments", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"items":[]`) {
		t.Fatalf("items should serialize as [], got %s", w.Body.String())
	}
}
