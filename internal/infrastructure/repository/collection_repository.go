package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/slider460/weshow_backend/internal/domain"
	"github.com/slider460/weshow_backend/internal/rowstore"
)

// collectionRepository implementa domain.CollectionRepository sobre una
// tabla del almacén de filas remoto.
type collectionRepository[T domain.CollectionItem] struct {
	client       *rowstore.Client
	table        string
	selectClause string
}

func newCollectionRepository[T domain.CollectionItem](client *rowstore.Client, table, selectClause string) *collectionRepository[T] {
	return &collectionRepository[T]{
		client:       client,
		table:        table,
		selectClause: selectClause,
	}
}

func (r *collectionRepository[T]) GetAll() ([]T, error) {
	var items []T
	q := rowstore.Query{
		Select: r.selectClause,
		Order:  "sort_order.asc",
	}
	if err := r.client.Select(context.Background(), r.table, q, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *collectionRepository[T]) Create(draft T) (T, error) {
	var created T
	payload, err := insertPayload(draft)
	if err != nil {
		return created, err
	}
	if err := r.client.Insert(context.Background(), r.table, payload, &created); err != nil {
		return created, err
	}
	return created, nil
}

// insertPayload convierte el draft en un mapa sin las columnas que asigna el
// almacén (id, created_at) ni las expansiones embebidas.
func insertPayload(row any) (map[string]any, error) {
	raw, err := json.Marshal(row)
	if err != nil {
		return nil, fmt.Errorf("error encoding draft row: %w", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("error encoding draft row: %w", err)
	}
	delete(m, "id")
	delete(m, "created_at")
	delete(m, "category")
	delete(m, "items")
	return m, nil
}

func (r *collectionRepository[T]) Update(id string, patch map[string]any) (T, error) {
	var updated T
	if err := r.client.Update(context.Background(), r.table, id, patch, &updated); err != nil {
		return updated, err
	}
	return updated, nil
}

func (r *collectionRepository[T]) Delete(id string) error {
	return r.client.Delete(context.Background(), r.table, id)
}
