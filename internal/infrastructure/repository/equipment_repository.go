package repository

import (
	"context"

	"github.com/slider460/weshow_backend/internal/domain"
	"github.com/slider460/weshow_backend/internal/rowstore"
)

// equipmentSelect expande la categoría del lado del almacén en la misma
// consulta.
const equipmentSelect = "*,category:equipment_categories(id,name,sort_order)"

type equipmentRepository struct {
	*collectionRepository[domain.Equipment]
}

// NewEquipmentRepository crea el repositorio del catálogo de equipos sobre
// las tablas "equipment" y "equipment_categories".
func NewEquipmentRepository(client *rowstore.Client) domain.EquipmentRepository {
	return &equipmentRepository{
		collectionRepository: newCollectionRepository[domain.Equipment](client, "equipment", equipmentSelect),
	}
}

func (r *equipmentRepository) GetCategories() ([]domain.EquipmentCategory, error) {
	var categories []domain.EquipmentCategory
	q := rowstore.Query{Order: "sort_order.asc"}
	if err := r.client.Select(context.Background(), "equipment_categories", q, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
