package application

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/slider460/weshow_backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEquipmentRepo expone un catálogo fijo para resolver nombres y tarifas.
type fakeEquipmentRepo struct {
	rows []domain.Equipment
}

func (f *fakeEquipmentRepo) GetAll() ([]domain.Equipment, error) {
	out := make([]domain.Equipment, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeEquipmentRepo) Create(draft domain.Equipment) (domain.Equipment, error) {
	return draft, nil
}

func (f *fakeEquipmentRepo) Update(id string, patch map[string]any) (domain.Equipment, error) {
	return domain.Equipment{}, fmt.Errorf("not implemented")
}

func (f *fakeEquipmentRepo) Delete(id string) error { return nil }

func (f *fakeEquipmentRepo) GetCategories() ([]domain.EquipmentCategory, error) {
	return nil, nil
}

// fakeEstimateRepo registra lo escrito y permite hacer fallar cada paso.
type fakeEstimateRepo struct {
	estimates    []domain.Estimate
	items        []domain.EstimateItem
	failParent   error
	failChildren error
	nextID       int
}

func (f *fakeEstimateRepo) CreateEstimate(e *domain.Estimate) error {
	if f.failParent != nil {
		return f.failParent
	}
	f.nextID++
	e.ID = fmt.Sprintf("est-%d", f.nextID)
	e.CreatedAt = time.Now()
	f.estimates = append(f.estimates, *e)
	return nil
}

func (f *fakeEstimateRepo) CreateItems(items []domain.EstimateItem) ([]domain.EstimateItem, error) {
	if f.failChildren != nil {
		return nil, f.failChildren
	}
	for i := range items {
		items[i].ID = fmt.Sprintf("item-%d", i+1)
	}
	f.items = append(f.items, items...)
	return items, nil
}

func (f *fakeEstimateRepo) GetAll() ([]domain.Estimate, error) {
	out := make([]domain.Estimate, len(f.estimates))
	copy(out, f.estimates)
	return out, nil
}

func (f *fakeEstimateRepo) UpdateStatus(id, status string) (*domain.Estimate, error) {
	for i := range f.estimates {
		if f.estimates[i].ID == id {
			f.estimates[i].Status = status
			e := f.estimates[i]
			return &e, nil
		}
	}
	return nil, fmt.Errorf("estimate not found")
}

func newTestEstimateService(t *testing.T, repo *fakeEstimateRepo) *EstimateService {
	t.Helper()
	equipmentRepo := &fakeEquipmentRepo{rows: []domain.Equipment{
		{ID: "eq-1", Name: "LED Screen 4x3", DayRate: 500, IsActive: true},
		{ID: "eq-2", Name: "Line Array Speaker", DayRate: 120, IsActive: true},
	}}
	equipment := NewEquipmentService(equipmentRepo)
	require.NoError(t, equipment.Refresh())
	return NewEstimateService(repo, equipment, nil, "")
}

func validEstimateRequest() EstimateRequest {
	return EstimateRequest{
		Name:      "Ivan Petrov",
		Email:     "ivan@example.com",
		Phone:     "+7 900 123-45-67",
		Company:   "Expo LLC",
		StartDate: time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		Lines: []EstimateLineRequest{
			{EquipmentID: "eq-1", Quantity: 2},
			{EquipmentID: "eq-2", Quantity: 4},
		},
	}
}

func TestSubmitEstimate_ComputesAmountsFromCatalog(t *testing.T) {
	repo := &fakeEstimateRepo{}
	svc := newTestEstimateService(t, repo)

	estimate, err := svc.SubmitEstimate(validEstimateRequest())

	require.NoError(t, err)
	// 10..12 inclusivo = 3 días
	assert.Equal(t, 3, estimate.Days)
	require.Len(t, estimate.Items, 2)

	assert.Equal(t, "LED Screen 4x3", estimate.Items[0].EquipmentName)
	assert.Equal(t, 500.0, estimate.Items[0].DayRate)
	assert.Equal(t, 2*500.0*3, estimate.Items[0].Amount)
	assert.Equal(t, 4*120.0*3, estimate.Items[1].Amount)

	expectedSubtotal := 2*500.0*3 + 4*120.0*3
	assert.Equal(t, expectedSubtotal, estimate.Subtotal)
	assert.Equal(t, expectedSubtotal, estimate.Total)
	assert.Equal(t, domain.EstimateStatusNew, estimate.Status)
	assert.True(t, strings.HasPrefix(estimate.Code, "EST-"))

	// Ambos pasos llegaron al almacén
	assert.Len(t, repo.estimates, 1)
	assert.Len(t, repo.items, 2)
	assert.Equal(t, estimate.ID, repo.items[0].EstimateID)
}

func TestSubmitEstimate_UnknownEquipmentPassesThrough(t *testing.T) {
	repo := &fakeEstimateRepo{}
	svc := newTestEstimateService(t, repo)

	req := validEstimateRequest()
	req.Lines = []EstimateLineRequest{{EquipmentID: "ghost", Quantity: 1}}

	estimate, err := svc.SubmitEstimate(req)

	// La referencia desconocida no se filtra localmente: se envía y es el
	// almacén quien decide. El fake la acepta.
	require.NoError(t, err)
	require.Len(t, estimate.Items, 1)
	assert.Equal(t, "ghost", estimate.Items[0].EquipmentID)
	assert.Empty(t, estimate.Items[0].EquipmentName)
	assert.Equal(t, 0.0, estimate.Items[0].Amount)
}

func TestSubmitEstimate_ChildFailureKeepsParent(t *testing.T) {
	repo := &fakeEstimateRepo{
		failChildren: fmt.Errorf("insert into estimate_items failed: foreign key violation"),
	}
	svc := newTestEstimateService(t, repo)

	estimate, err := svc.SubmitEstimate(validEstimateRequest())

	require.Error(t, err)
	assert.Nil(t, estimate)
	// La fila padre quedó registrada sin líneas y el error lo dice
	assert.Len(t, repo.estimates, 1)
	assert.Empty(t, repo.items)
	assert.Contains(t, err.Error(), "line items failed")
	assert.Contains(t, err.Error(), repo.estimates[0].Code)
}

func TestSubmitEstimate_ParentFailureWritesNothing(t *testing.T) {
	repo := &fakeEstimateRepo{failParent: fmt.Errorf("permission denied for table estimates")}
	svc := newTestEstimateService(t, repo)

	estimate, err := svc.SubmitEstimate(validEstimateRequest())

	require.Error(t, err)
	assert.Nil(t, estimate)
	assert.Empty(t, repo.estimates)
	assert.Empty(t, repo.items)
}

func TestSubmitEstimate_ValidationErrors(t *testing.T) {
	repo := &fakeEstimateRepo{}
	svc := newTestEstimateService(t, repo)

	tests := []struct {
		name   string
		mutate func(*EstimateRequest)
	}{
		{"empty name", func(r *EstimateRequest) { r.Name = "" }},
		{"bad email", func(r *EstimateRequest) { r.Email = "not-an-email" }},
		{"end before start", func(r *EstimateRequest) {
			r.EndDate = r.StartDate.AddDate(0, 0, -1)
		}},
		{"no lines", func(r *EstimateRequest) { r.Lines = nil }},
		{"zero quantity", func(r *EstimateRequest) { r.Lines[0].Quantity = 0 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validEstimateRequest()
			tc.mutate(&req)

			_, err := svc.SubmitEstimate(req)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrValidation))
			assert.Empty(t, repo.estimates)
		})
	}
}

func TestUpdateStatus_RejectsUnknownStatus(t *testing.T) {
	repo := &fakeEstimateRepo{}
	svc := newTestEstimateService(t, repo)

	_, err := svc.UpdateStatus("est-1", "archived")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrValidation))
}

func TestUpdateStatus_AppliesValidStatus(t *testing.T) {
	repo := &fakeEstimateRepo{}
	svc := newTestEstimateService(t, repo)
	created, err := svc.SubmitEstimate(validEstimateRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(created.ID, domain.EstimateStatusProcessed)

	require.NoError(t, err)
	assert.Equal(t, domain.EstimateStatusProcessed, updated.Status)
}
