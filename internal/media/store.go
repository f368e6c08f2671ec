package media

import (
	"context"
	"strings"
)

// Store is the data-access capability the service depends on. Every
// operation is scoped by owner id.
type Store interface {
	List(ctx context.Context, ownerID int64, filter Filter) ([]*Item, error)
	Get(ctx context.Context, ownerID, id int64) (*Item, error)
	Exists(ctx context.Context, ownerID int64, title string, year int, kind Kind) (bool, error)
	Insert(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, ownerID, id int64) error
}

// SameEntry reports whether a and b describe the same logical entry: same
// owner, title compared case-insensitively, same year and kind.
func SameEntry(a, b *Item) bool {
	return a.OwnerID == b.OwnerID &&
		strings.EqualFold(a.Title, b.Title) &&
		a.Year == b.Year &&
		a.Kind == b.Kind
}
