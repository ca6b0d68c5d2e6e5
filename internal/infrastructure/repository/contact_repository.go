package repository

import (
	"context"
	"fmt"

	"github.com/slider460/weshow_backend/internal/domain"
	"github.com/slider460/weshow_backend/internal/rowstore"
)

type contactRepository struct {
	client *rowstore.Client
}

// NewContactRepository crea el repositorio de mensajes de contacto sobre la
// tabla "contacts".
func NewContactRepository(client *rowstore.Client) domain.ContactRepository {
	return &contactRepository{client: client}
}

func (r *contactRepository) Create(m *domain.ContactMessage) error {
	payload, err := insertPayload(m)
	if err != nil {
		return err
	}
	var created domain.ContactMessage
	if err := r.client.Insert(context.Background(), "contacts", payload, &created); err != nil {
		return fmt.Errorf("error creating contact message: %w", err)
	}
	*m = created
	return nil
}

func (r *contactRepository) GetAll() ([]domain.ContactMessage, error) {
	var messages []domain.ContactMessage
	q := rowstore.Query{Order: "created_at.desc"}
	if err := r.client.Select(context.Background(), "contacts", q, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}

func (r *contactRepository) UpdateStatus(id, status string) error {
	patch := map[string]any{"status": status}
	var updated domain.ContactMessage
	return r.client.Update(context.Background(), "contacts", id, patch, &updated)
}
