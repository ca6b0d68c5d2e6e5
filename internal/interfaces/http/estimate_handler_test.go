package http

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/slider460/weshow_backend/internal/application"
	"github.com/slider460/weshow_backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubEquipmentRepo struct {
	rows []domain.Equipment
}

func (s *stubEquipmentRepo) GetAll() ([]domain.Equipment, error) {
	out := make([]domain.Equipment, len(s.rows))
	copy(out, s.rows)
	return out, nil
}

func (s *stubEquipmentRepo) Create(draft domain.Equipment) (domain.Equipment, error) {
	return draft, nil
}

func (s *stubEquipmentRepo) Update(id string, patch map[string]any) (domain.Equipment, error) {
	return domain.Equipment{}, fmt.Errorf("not implemented")
}

func (s *stubEquipmentRepo) Delete(id string) error { return nil }

func (s *stubEquipmentRepo) GetCategories() ([]domain.EquipmentCategory, error) {
	return nil, nil
}

type stubEstimateRepo struct {
	estimates []domain.Estimate
	items     []domain.EstimateItem
}

func (s *stubEstimateRepo) CreateEstimate(e *domain.Estimate) error {
	e.ID = fmt.Sprintf("est-%d", len(s.estimates)+1)
	e.CreatedAt = time.Now()
	s.estimates = append(s.estimates, *e)
	return nil
}

func (s *stubEstimateRepo) CreateItems(items []domain.EstimateItem) ([]domain.EstimateItem, error) {
	s.items = append(s.items, items...)
	return items, nil
}

func (s *stubEstimateRepo) GetAll() ([]domain.Estimate, error) {
	out := make([]domain.Estimate, len(s.estimates))
	copy(out, s.estimates)
	return out, nil
}

func (s *stubEstimateRepo) UpdateStatus(id, status string) (*domain.Estimate, error) {
	for i := range s.estimates {
		if s.estimates[i].ID == id {
			s.estimates[i].Status = status
			e := s.estimates[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf("estimate not found")
}

func newEstimateApp(t *testing.T, repo *stubEstimateRepo, limiter *application.RateLimiter) *fiber.App {
	t.Helper()
	equipmentRepo := &stubEquipmentRepo{rows: []domain.Equipment{
		{ID: "eq-1", Name: "LED Screen 4x3", DayRate: 500, IsActive: true},
	}}
	equipment := application.NewEquipmentService(equipmentRepo)
	require.NoError(t, equipment.Refresh())

	service := application.NewEstimateService(repo, equipment, nil, "")
	handler := NewEstimateHandler(service, limiter)

	app := fiber.New()
	app.Post("/api/estimates", handler.CreateEstimate)
	app.Get("/api/admin/estimates", handler.ListEstimates)
	app.Patch("/api/admin/estimates/:id/status", handler.UpdateEstimateStatus)
	return app
}

func estimateBody() *strings.Reader {
	return strings.NewReader(`{
		"name": "Ivan Petrov",
		"email": "ivan@example.com",
		"phone": "+79001234567",
		"start_date": "2026-09-10T00:00:00Z",
		"end_date": "2026-09-12T00:00:00Z",
		"lines": [{"equipment_id": "eq-1", "quantity": 2}]
	}`)
}

func TestCreateEstimate_Created(t *testing.T) {
	repo := &stubEstimateRepo{}
	app := newEstimateApp(t, repo, nil)

	req := httptest.NewRequest("POST", "/api/estimates", estimateBody())
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var estimate domain.Estimate
	decodeBody(t, resp.Body, &estimate)
	assert.True(t, strings.HasPrefix(estimate.Code, "EST-"))
	assert.Equal(t, 3, estimate.Days)
	assert.Equal(t, 2*500.0*3, estimate.Total)
	require.Len(t, repo.items, 1)
	assert.Equal(t, estimate.ID, repo.items[0].EstimateID)
}

func TestCreateEstimate_InvalidBodyIsBadRequest(t *testing.T) {
	app := newEstimateApp(t, &stubEstimateRepo{}, nil)

	req := httptest.NewRequest("POST", "/api/estimates", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestCreateEstimate_RateLimited(t *testing.T) {
	limiter := application.NewRateLimiter(1*time.Minute, 1)
	app := newEstimateApp(t, &stubEstimateRepo{}, limiter)

	req := httptest.NewRequest("POST", "/api/estimates", estimateBody())
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	req = httptest.NewRequest("POST", "/api/estimates", estimateBody())
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusTooManyRequests, resp.StatusCode)

	var payload map[string]string
	decodeBody(t, resp.Body, &payload)
	assert.Contains(t, payload["error"], "too many requests")
}

func TestUpdateEstimateStatus(t *testing.T) {
	repo := &stubEstimateRepo{}
	app := newEstimateApp(t, repo, nil)

	req := httptest.NewRequest("POST", "/api/estimates", estimateBody())
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var created domain.Estimate
	decodeBody(t, resp.Body, &created)

	req = httptest.NewRequest("PATCH", "/api/admin/estimates/"+created.ID+"/status",
		strings.NewReader(`{"status":"processed"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated domain.Estimate
	decodeBody(t, resp.Body, &updated)
	assert.Equal(t, domain.EstimateStatusProcessed, updated.Status)

	req = httptest.NewRequest("PATCH", "/api/admin/estimates/"+created.ID+"/status",
		strings.NewReader(`{"status":"archived"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
