package application

import (
	"fmt"

	"github.com/slider460/weshow_backend/internal/domain"
)

// LogoService administra la colección de logos de clientes.
type LogoService struct {
	collection *Collection[domain.Logo]
}

func NewLogoService(repo domain.CollectionRepository[domain.Logo]) *LogoService {
	return &LogoService{collection: NewCollection("logos", repo)}
}

// Refresh recarga los logos desde el almacén.
func (s *LogoService) Refresh() error {
	return s.collection.FetchAll()
}

// ActiveLogos retorna los logos visibles en el sitio público.
func (s *LogoService) ActiveLogos() []domain.Logo {
	return s.collection.ActiveOnly()
}

// State retorna el estado completo para el panel de administración.
func (s *LogoService) State() CollectionState[domain.Logo] {
	return s.collection.State()
}

func (s *LogoService) AddLogo(name, imageURL, websiteURL string, sortOrder int) (domain.Logo, error) {
	if name == "" {
		return domain.Logo{}, fmt.Errorf("%w: logo name is required", ErrValidation)
	}
	if imageURL == "" {
		return domain.Logo{}, fmt.Errorf("%w: logo image URL is required", ErrValidation)
	}

	draft := domain.Logo{
		Name:       name,
		ImageURL:   imageURL,
		WebsiteURL: websiteURL,
		SortOrder:  sortOrder,
		IsActive:   true,
	}
	return s.collection.Add(draft)
}

func (s *LogoService) UpdateLogo(id string, patch map[string]any) (domain.Logo, error) {
	return s.collection.Update(id, patch)
}

func (s *LogoService) DeleteLogo(id string) error {
	return s.collection.Delete(id)
}

func (s *LogoService) ToggleLogo(id string) (domain.Logo, error) {
	return s.collection.ToggleActive(id)
}

func (s *LogoService) ReorderLogos(from, to int) error {
	return s.collection.Reorder(from, to)
}
