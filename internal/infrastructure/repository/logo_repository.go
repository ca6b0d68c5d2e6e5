package repository

import (
	"github.com/slider460/weshow_backend/internal/domain"
	"github.com/slider460/weshow_backend/internal/rowstore"
)

// NewLogoRepository crea el repositorio de logos sobre la tabla "logos".
func NewLogoRepository(client *rowstore.Client) domain.CollectionRepository[domain.Logo] {
	return newCollectionRepository[domain.Logo](client, "logos", "*")
}
