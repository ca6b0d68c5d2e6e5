package repository

import (
	"github.com/slider460/weshow_backend/internal/domain"
	"github.com/slider460/weshow_backend/internal/rowstore"
)

// NewLetterRepository crea el repositorio de cartas/certificados sobre la
// tabla "letters".
func NewLetterRepository(client *rowstore.Client) domain.CollectionRepository[domain.Letter] {
	return newCollectionRepository[domain.Letter](client, "letters", "*")
}
