package application

import (
	"fmt"

	"github.com/slider460/weshow_backend/internal/domain"
)

// EquipmentService administra el catálogo de equipos de alquiler.
type EquipmentService struct {
	collection *Collection[domain.Equipment]
	repo       domain.EquipmentRepository
}

func NewEquipmentService(repo domain.EquipmentRepository) *EquipmentService {
	return &EquipmentService{
		collection: NewCollection("equipment", repo),
		repo:       repo,
	}
}

func (s *EquipmentService) Refresh() error {
	return s.collection.FetchAll()
}

// ActiveEquipment retorna el catálogo visible en el sitio público.
func (s *EquipmentService) ActiveEquipment() []domain.Equipment {
	return s.collection.ActiveOnly()
}

func (s *EquipmentService) State() CollectionState[domain.Equipment] {
	return s.collection.State()
}

// Categories lee las categorías directamente del almacén (no se cachean).
func (s *EquipmentService) Categories() ([]domain.EquipmentCategory, error) {
	return s.repo.GetCategories()
}

// FindEquipment busca un equipo en la copia local por id.
func (s *EquipmentService) FindEquipment(id string) (domain.Equipment, bool) {
	for _, item := range s.collection.Items() {
		if item.ID == id {
			return item, true
		}
	}
	return domain.Equipment{}, false
}

func (s *EquipmentService) AddEquipment(draft domain.Equipment) (domain.Equipment, error) {
	if draft.Name == "" {
		return domain.Equipment{}, fmt.Errorf("%w: equipment name is required", ErrValidation)
	}
	if draft.DayRate < 0 {
		return domain.Equipment{}, fmt.Errorf("%w: equipment day rate cannot be negative", ErrValidation)
	}
	draft.ID = ""
	draft.Category = nil
	draft.IsActive = true
	return s.collection.Add(draft)
}

func (s *EquipmentService) UpdateEquipment(id string, patch map[string]any) (domain.Equipment, error) {
	return s.collection.Update(id, patch)
}

func (s *EquipmentService) DeleteEquipment(id string) error {
	return s.collection.Delete(id)
}

func (s *EquipmentService) ToggleEquipment(id string) (domain.Equipment, error) {
	return s.collection.ToggleActive(id)
}

func (s *EquipmentService) ReorderEquipment(from, to int) error {
	return s.collection.Reorder(from, to)
}
