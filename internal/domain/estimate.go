package domain

import "time"

// Estados de una cotización de alquiler.
const (
	EstimateStatusNew       = "new"
	EstimateStatusProcessed = "processed"
	EstimateStatusClosed    = "closed"
)

// Estimate es una cotización de alquiler de equipos solicitada desde el
// sitio público. Los items viven en una tabla hija del almacén.
type Estimate struct {
	ID        string         `json:"id"`
	Code      string         `json:"code"`
	Name      string         `json:"name"`
	Email     string         `json:"email"`
	Phone     string         `json:"phone"`
	Company   string         `json:"company"`
	Message   string         `json:"message"`
	StartDate time.Time      `json:"start_date"`
	EndDate   time.Time      `json:"end_date"`
	Days      int            `json:"days"`
	Subtotal  float64        `json:"subtotal"`
	Total     float64        `json:"total"`
	Status    string         `json:"status"`
	CreatedAt time.Time      `json:"created_at"`
	Items     []EstimateItem `json:"items,omitempty"`
}

// EstimateItem es una línea de la cotización: cantidad × tarifa diaria × días.
type EstimateItem struct {
	ID            string  `json:"id"`
	EstimateID    string  `json:"estimate_id"`
	EquipmentID   string  `json:"equipment_id"`
	EquipmentName string  `json:"equipment_name"`
	Quantity      int     `json:"quantity"`
	DayRate       float64 `json:"day_rate"`
	Days          int     `json:"days"`
	Amount        float64 `json:"amount"`
}

// EstimateRepository define las operaciones de datos de cotizaciones.
// La creación es en dos pasos sin transacción: primero la fila padre y
// luego las líneas; un fallo en el segundo paso deja una cotización sin
// líneas en el almacén.
type EstimateRepository interface {
	CreateEstimate(e *Estimate) error
	CreateItems(items []EstimateItem) ([]EstimateItem, error)
	GetAll() ([]Estimate, error)
	UpdateStatus(id, status string) (*Estimate, error)
}
