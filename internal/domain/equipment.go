package domain

import "time"

// EquipmentCategory agrupa los equipos del catálogo de alquiler.
type EquipmentCategory struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
}

// Equipment representa un equipo del catálogo de alquiler. La categoría
// viene expandida por el almacén en la misma consulta.
type Equipment struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description"`
	CategoryID  string             `json:"category_id"`
	Category    *EquipmentCategory `json:"category,omitempty"`
	DayRate     float64            `json:"day_rate"`
	ImageURL    string             `json:"image_url"`
	SortOrder   int                `json:"sort_order"`
	IsActive    bool               `json:"is_active"`
	CreatedAt   time.Time          `json:"created_at"`
}

func (e Equipment) ItemID() string   { return e.ID }
func (e Equipment) ItemOrder() int   { return e.SortOrder }
func (e Equipment) ItemActive() bool { return e.IsActive }

// EquipmentRepository extiende el repositorio de colección con la lectura
// de categorías.
type EquipmentRepository interface {
	CollectionRepository[Equipment]
	GetCategories() ([]EquipmentCategory, error)
}
