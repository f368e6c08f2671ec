package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/blakestevenson/mediacatalog/internal/apierror"
	"github.com/blakestevenson/mediacatalog/internal/validation"
	"go.uber.org/zap"
)

// Service defines the interface for media operations
type Service interface {
	ListItems(ctx context.Context, ownerID int64, filter Filter) ([]*Item, error)
	GetItem(ctx context.Context, ownerID, id int64) (*Item, error)
	CreateItem(ctx context.Context, ownerID int64, params CreateParams) (*Item, error)
	UpdateItem(ctx context.Context, ownerID, id int64, params UpdateParams) (*Item, error)
	UpdateStatus(ctx context.Context, ownerID, id int64, params StatusParams) (*Item, error)
	DeleteItem(ctx context.Context, ownerID, id int64) error
	SeedDemoData(ctx context.Context, ownerID int64) error
}

// service implements the Service interface
type service struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new media service
func NewService(store Store, logger *zap.Logger) Service {
	return &service{
		store:  store,
		logger: logger,
	}
}

// ListItems lists the owner's items matching filter
func (s *service) ListItems(ctx context.Context, ownerID int64, filter Filter) ([]*Item, error) {
	items, err := s.store.List(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list media items: %w", err)
	}
	return items, nil
}

// GetItem retrieves one of the owner's items
func (s *service) GetItem(ctx context.Context, ownerID, id int64) (*Item, error) {
	item, err := s.store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, storeError(err, "failed to get media item")
	}
	return item, nil
}

// CreateItem creates a new item unless the owner already has an equivalent one
func (s *service) CreateItem(ctx context.Context, ownerID int64, params CreateParams) (*Item, error) {
	exists, err := s.store.Exists(ctx, ownerID, params.Title, params.Year, params.Kind)
	if err != nil {
		return nil, fmt.Errorf("failed to check for duplicate media item: %w", err)
	}
	if exists {
		return nil, apierror.AlreadyExists(ErrAlreadyExists)
	}

	item := &Item{
		OwnerID:     ownerID,
		Title:       params.Title,
		Kind:        params.Kind,
		Year:        params.Year,
		Description: params.Description,
		Status:      StatusToWatch,
	}
	if err := validation.ValidateDomain(item); err != nil {
		return nil, err
	}

	if err := s.store.Insert(ctx, item); err != nil {
		return nil, storeError(err, "failed to create media item")
	}

	s.logger.Debug("media item created",
		zap.Int64("id", item.ID),
		zap.String("kind", string(item.Kind)),
	)
	return item, nil
}

// UpdateItem replaces title, kind, year and description, keeping status,
// rating and creation time
func (s *service) UpdateItem(ctx context.Context, ownerID, id int64, params UpdateParams) (*Item, error) {
	item, err := s.store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, storeError(err, "failed to get media item")
	}

	item.Title = params.Title
	item.Kind = params.Kind
	item.Year = params.Year
	item.Description = params.Description
	if err := validation.ValidateDomain(item); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, item); err != nil {
		return nil, storeError(err, "failed to update media item")
	}
	return item, nil
}

// UpdateStatus sets the watch status and rating. An omitted rating clears it.
func (s *service) UpdateStatus(ctx context.Context, ownerID, id int64, params StatusParams) (*Item, error) {
	item, err := s.store.Get(ctx, ownerID, id)
	if err != nil {
		return nil, storeError(err, "failed to get media item")
	}

	item.Status = params.Status
	item.Rating = params.Rating
	if err := validation.ValidateDomain(item); err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, item); err != nil {
		return nil, storeError(err, "failed to update media item status")
	}
	return item, nil
}

// DeleteItem deletes one of the owner's items
func (s *service) DeleteItem(ctx context.Context, ownerID, id int64) error {
	if err := s.store.Delete(ctx, ownerID, id); err != nil {
		return storeError(err, "failed to delete media item")
	}
	return nil
}

// storeError turns store sentinels into application errors and wraps the rest
func storeError(err error, msg string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return apierror.NotFound(err)
	case errors.Is(err, ErrAlreadyExists):
		return apierror.AlreadyExists(err)
	default:
		return fmt.Errorf("%s: %w", msg, err)
	}
}
