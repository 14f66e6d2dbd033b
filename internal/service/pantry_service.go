package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pantry/internal/assistant"
	"pantry/internal/domain"
)

// ErrSuggestionsDisabled is returned by SuggestRecipes when no
// suggestion backend is configured.
var ErrSuggestionsDisabled = errors.New("suggestions are not configured")

// itemRepository is the subset of store.ItemStore that PantryService
// requires.
type itemRepository interface {
	Insert(ctx context.Context, name string, quantity int64, expiration string) (*domain.Item, error)
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	Update(ctx context.Context, id int64, name string, quantity int64, expiration string) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]*domain.Item, error)
}

type PantryService struct {
	items     itemRepository
	suggester assistant.Suggester
	logger    *slog.Logger
}

// NewPantryService creates the service. suggester may be nil, which
// disables recipe suggestions.
func NewPantryService(items itemRepository, suggester assistant.Suggester, logger *slog.Logger) *PantryService {
	return &PantryService{
		items:     items,
		suggester: suggester,
		logger:    logger,
	}
}

func (s *PantryService) CreateItem(ctx context.Context, name string, quantity int64, expiration string) (*domain.Item, error) {
	return s.items.Insert(ctx, name, quantity, expiration)
}

func (s *PantryService) ListItems(ctx context.Context) ([]*domain.Item, error) {
	return s.items.List(ctx)
}

// UpdateItem overwrites all mutable fields of the item. It returns
// (nil, nil) when no item with that id exists.
func (s *PantryService) UpdateItem(ctx context.Context, id int64, name string, quantity int64, expiration string) (*domain.Item, error) {
	present, err := s.items.Update(ctx, id, name, quantity, expiration)
	if err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}
	if !present {
		return nil, nil
	}
	return s.items.GetByID(ctx, id)
}

// DeleteItem removes the item and returns its prior record, or
// (nil, nil) when no item with that id exists. The record is fetched
// before deletion so the client receives the full removed item, not
// just its id.
func (s *PantryService) DeleteItem(ctx context.Context, id int64) (*domain.Item, error) {
	item, err := s.items.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get item: %w", err)
	}
	if item == nil {
		return nil, nil
	}

	present, err := s.items.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete item: %w", err)
	}
	if !present {
		// Lost a race with a concurrent delete.
		return nil, nil
	}

	return item, nil
}

// SuggestRecipes asks the configured assistant for recipe ideas based
// on the current pantry contents.
func (s *PantryService) SuggestRecipes(ctx context.Context) (string, error) {
	if s.suggester == nil {
		return "", ErrSuggestionsDisabled
	}

	items, err := s.items.List(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list items: %w", err)
	}

	s.logger.Info("requesting recipe suggestions", "items", len(items))
	return s.suggester.Suggest(ctx, items)
}
