package application

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/slider460/weshow_backend/internal/domain"
)

// CollectionState es una instantánea del estado de una colección sincronizada.
type CollectionState[T domain.CollectionItem] struct {
	Items       []T        `json:"items"`
	Loading     bool       `json:"loading"`
	Error       string     `json:"error,omitempty"`
	LastUpdated *time.Time `json:"last_updated,omitempty"`
}

// Collection mantiene en memoria una copia de una colección del almacén
// remoto y media todas las lecturas y escrituras contra él. Las escrituras
// actualizan la copia local con la fila que devuelve el almacén, sin
// recargar la colección completa. No hay detección de escritores
// concurrentes: dos sesiones de administración simultáneas terminan en
// last-writer-wins.
type Collection[T domain.CollectionItem] struct {
	name string
	repo domain.CollectionRepository[T]

	mu          sync.RWMutex
	items       []T
	loading     bool
	lastError   string
	lastUpdated *time.Time
}

// NewCollection crea una colección vacía sobre el repositorio dado.
func NewCollection[T domain.CollectionItem](name string, repo domain.CollectionRepository[T]) *Collection[T] {
	return &Collection[T]{name: name, repo: repo}
}

// FetchAll recarga la colección completa desde el almacén. Si la carga
// falla, los items anteriores se conservan (stale pero disponibles) y el
// error queda registrado en el estado.
func (c *Collection[T]) FetchAll() error {
	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	items, err := c.repo.GetAll()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false

	if err != nil {
		c.lastError = err.Error()
		log.Printf("collection %s: fetch failed: %v", c.name, err)
		return err
	}

	now := time.Now()
	c.items = items
	c.lastError = ""
	c.lastUpdated = &now
	return nil
}

// Add inserta un elemento y lo agrega a la copia local, sin recargar.
func (c *Collection[T]) Add(draft T) (T, error) {
	created, err := c.repo.Create(draft)
	if err != nil {
		c.setError(err)
		return created, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, created)
	c.lastError = ""
	return created, nil
}

// Update aplica un patch parcial por id y reemplaza el elemento local
// correspondiente. Falla si el id no existe en el almacén.
func (c *Collection[T]) Update(id string, patch map[string]any) (T, error) {
	updated, err := c.repo.Update(id, patch)
	if err != nil {
		c.setError(err)
		return updated, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastError = ""
	for i, item := range c.items {
		if item.ItemID() == id {
			c.items[i] = updated
			return updated, nil
		}
	}
	// El almacén conoce la fila pero la copia local no (otro escritor la
	// creó); se incorpora al final.
	c.items = append(c.items, updated)
	return updated, nil
}

// Delete elimina el elemento por id. Borrar un id inexistente es éxito sin
// efecto, igual que en el almacén.
func (c *Collection[T]) Delete(id string) error {
	if err := c.repo.Delete(id); err != nil {
		c.setError(err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastError = ""
	for i, item := range c.items {
		if item.ItemID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	return nil
}

// ToggleActive invierte la bandera de visibilidad del elemento.
func (c *Collection[T]) ToggleActive(id string) (T, error) {
	item, ok := c.find(id)
	if !ok {
		var zero T
		err := fmt.Errorf("item %s not found in collection %s", id, c.name)
		c.setError(err)
		return zero, err
	}
	return c.Update(id, map[string]any{"is_active": !item.ItemActive()})
}

// Reorder mueve el elemento de la posición from a la posición to. Solo se
// recalcula el sort_order del elemento movido (±1 respecto a su vecino);
// la colección no se renormaliza, por lo que reordenamientos repetidos
// pueden producir valores de orden duplicados.
func (c *Collection[T]) Reorder(from, to int) error {
	c.mu.RLock()
	size := len(c.items)
	if from < 0 || from >= size || to < 0 || to >= size {
		c.mu.RUnlock()
		return fmt.Errorf("%w: reorder out of range: from=%d to=%d size=%d", ErrValidation, from, to, size)
	}
	if from == to {
		c.mu.RUnlock()
		return nil
	}
	moved := c.items[from]
	neighbor := c.items[to]
	c.mu.RUnlock()

	newOrder := neighbor.ItemOrder()
	if to > from {
		newOrder++
	} else {
		newOrder--
	}

	updated, err := c.Update(moved.ItemID(), map[string]any{"sort_order": newOrder})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.ItemID() == moved.ItemID() {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	if to > len(c.items) {
		to = len(c.items)
	}
	c.items = append(c.items[:to], append([]T{updated}, c.items[to:]...)...)
	return nil
}

// Items retorna una copia de la colección en su orden actual.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

// ActiveOnly retorna solo los elementos visibles, preservando el orden.
// Se recalcula en cada llamada y nunca falla.
func (c *Collection[T]) ActiveOnly() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.items))
	for _, item := range c.items {
		if item.ItemActive() {
			out = append(out, item)
		}
	}
	return out
}

// State retorna una instantánea completa del estado de la colección.
func (c *Collection[T]) State() CollectionState[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return CollectionState[T]{
		Items:       items,
		Loading:     c.loading,
		Error:       c.lastError,
		LastUpdated: c.lastUpdated,
	}
}

// Loading indica si hay una recarga en curso.
func (c *Collection[T]) Loading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Error retorna el mensaje del último fallo, o vacío.
func (c *Collection[T]) Error() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

// LastUpdated retorna el momento de la última recarga exitosa.
func (c *Collection[T]) LastUpdated() *time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastUpdated
}

func (c *Collection[T]) find(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.ItemID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) setError(err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastError = err.Error()
	log.Printf("collection %s: %v", c.name, err)
}
