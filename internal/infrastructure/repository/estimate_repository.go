package repository

import (
	"context"
	"fmt"

	"github.com/slider460/weshow_backend/internal/domain"
	"github.com/slider460/weshow_backend/internal/rowstore"
)

type estimateRepository struct {
	client *rowstore.Client
}

// NewEstimateRepository crea el repositorio de cotizaciones sobre las tablas
// "estimates" y "estimate_items".
func NewEstimateRepository(client *rowstore.Client) domain.EstimateRepository {
	return &estimateRepository{client: client}
}

// CreateEstimate inserta la fila padre y rellena e con la fila creada.
func (r *estimateRepository) CreateEstimate(e *domain.Estimate) error {
	payload, err := insertPayload(e)
	if err != nil {
		return err
	}
	var created domain.Estimate
	if err := r.client.Insert(context.Background(), "estimates", payload, &created); err != nil {
		return fmt.Errorf("error creating estimate: %w", err)
	}
	created.Items = e.Items
	*e = created
	return nil
}

// CreateItems inserta las líneas de una cotización en una sola llamada.
// No hay transacción con la fila padre: si esta llamada falla, la cotización
// queda sin líneas en el almacén.
func (r *estimateRepository) CreateItems(items []domain.EstimateItem) ([]domain.EstimateItem, error) {
	payloads := make([]map[string]any, 0, len(items))
	for _, item := range items {
		payload, err := insertPayload(item)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, payload)
	}

	var created []domain.EstimateItem
	if err := r.client.Insert(context.Background(), "estimate_items", payloads, &created); err != nil {
		return nil, fmt.Errorf("error creating estimate items: %w", err)
	}
	return created, nil
}

func (r *estimateRepository) GetAll() ([]domain.Estimate, error) {
	var estimates []domain.Estimate
	q := rowstore.Query{
		Select: "*,items:estimate_items(*)",
		Order:  "created_at.desc",
	}
	if err := r.client.Select(context.Background(), "estimates", q, &estimates); err != nil {
		return nil, err
	}
	return estimates, nil
}

func (r *estimateRepository) UpdateStatus(id, status string) (*domain.Estimate, error) {
	var updated domain.Estimate
	patch := map[string]any{"status": status}
	if err := r.client.Update(context.Background(), "estimates", id, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}
