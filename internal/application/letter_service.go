package application

import (
	"fmt"
	"time"

	"github.com/slider460/weshow_backend/internal/domain"
)

// LetterService administra la colección de cartas de agradecimiento y
// certificados.
type LetterService struct {
	collection *Collection[domain.Letter]
}

func NewLetterService(repo domain.CollectionRepository[domain.Letter]) *LetterService {
	return &LetterService{collection: NewCollection("letters", repo)}
}

func (s *LetterService) Refresh() error {
	return s.collection.FetchAll()
}

func (s *LetterService) ActiveLetters() []domain.Letter {
	return s.collection.ActiveOnly()
}

func (s *LetterService) State() CollectionState[domain.Letter] {
	return s.collection.State()
}

func (s *LetterService) AddLetter(title, issuer, fileURL, previewURL string, issuedAt *time.Time, sortOrder int) (domain.Letter, error) {
	if title == "" {
		return domain.Letter{}, fmt.Errorf("%w: letter title is required", ErrValidation)
	}
	if fileURL == "" {
		return domain.Letter{}, fmt.Errorf("%w: letter file URL is required", ErrValidation)
	}

	draft := domain.Letter{
		Title:      title,
		Issuer:     issuer,
		FileURL:    fileURL,
		PreviewURL: previewURL,
		IssuedAt:   issuedAt,
		SortOrder:  sortOrder,
		IsActive:   true,
	}
	return s.collection.Add(draft)
}

func (s *LetterService) UpdateLetter(id string, patch map[string]any) (domain.Letter, error) {
	return s.collection.Update(id, patch)
}

func (s *LetterService) DeleteLetter(id string) error {
	return s.collection.Delete(id)
}

func (s *LetterService) ToggleLetter(id string) (domain.Letter, error) {
	return s.collection.ToggleActive(id)
}

func (s *LetterService) ReorderLetters(from, to int) error {
	return s.collection.Reorder(from, to)
}
