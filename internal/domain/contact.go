package domain

import "time"

// Estados de un mensaje de contacto.
const (
	ContactStatusNew      = "new"
	ContactStatusAnswered = "answered"
)

// ContactMessage es un mensaje enviado desde el formulario de contacto.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactRepository define las operaciones de datos de mensajes de contacto.
type ContactRepository interface {
	Create(m *ContactMessage) error
	GetAll() ([]ContactMessage, error)
	UpdateStatus(id, status string) error
}
