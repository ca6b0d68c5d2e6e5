package domain

// CollectionItem es el contrato mínimo de un elemento de colección ordenable
// y visible/oculto en el sitio público.
type CollectionItem interface {
	ItemID() string
	ItemOrder() int
	ItemActive() bool
}

// CollectionRepository define las operaciones de datos de una colección
// respaldada por el almacén de filas remoto.
type CollectionRepository[T CollectionItem] interface {
	// GetAll retorna todas las filas ordenadas por sort_order ascendente.
	GetAll() ([]T, error)
	// Create inserta una fila y retorna la fila creada por el almacén.
	Create(draft T) (T, error)
	// Update aplica un patch parcial por id y retorna la fila actualizada.
	Update(id string, patch map[string]any) (T, error)
	// Delete elimina la fila por id. Borrar un id inexistente no es error.
	Delete(id string) error
}
