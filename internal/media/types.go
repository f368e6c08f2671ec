package media

import (
	"time"

	"github.com/blakestevenson/mediacatalog/internal/validation"
)

// Kind represents the type of media item
type Kind string

const (
	KindMovie   Kind = "movie"
	KindSeries  Kind = "series"
	KindCourse  Kind = "course"
	KindBook    Kind = "book"
	KindPodcast Kind = "podcast"
)

// Valid reports whether k is a known kind
func (k Kind) Valid() bool {
	switch k {
	case KindMovie, KindSeries, KindCourse, KindBook, KindPodcast:
		return true
	}
	return false
}

// ParseKind converts a raw filter value into a Kind
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", validation.NewDomainError("kind", "unknown media kind")
	}
	return k, nil
}

// WatchStatus represents how far the owner got through an item
type WatchStatus string

const (
	StatusToWatch  WatchStatus = "to_watch"
	StatusWatching WatchStatus = "watching"
	StatusWatched  WatchStatus = "watched"
)

// Valid reports whether s is a known watch status
func (s WatchStatus) Valid() bool {
	switch s {
	case StatusToWatch, StatusWatching, StatusWatched:
		return true
	}
	return false
}

// ParseWatchStatus converts a raw filter value into a WatchStatus
func ParseWatchStatus(s string) (WatchStatus, error) {
	ws := WatchStatus(s)
	if !ws.Valid() {
		return "", validation.NewDomainError("status", "unknown watch status")
	}
	return ws, nil
}

// Item represents a catalog entry owned by a single user
type Item struct {
	ID          int64       `json:"id"`
	OwnerID     int64       `json:"user_id" validate:"gt=0"`
	Title       string      `json:"title" validate:"required,max=200"`
	Kind        Kind        `json:"kind" validate:"oneof=movie series course book podcast"`
	Year        int         `json:"year" validate:"gte=1800,lte=2030"`
	Description *string     `json:"description" validate:"omitempty,max=1000"`
	Status      WatchStatus `json:"status" validate:"oneof=to_watch watching watched"`
	Rating      *int        `json:"rating" validate:"omitempty,gte=1,lte=10"`
	CreatedAt   time.Time   `json:"created_at"`
}

// CreateParams holds parameters for creating an item
type CreateParams struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Kind        Kind    `json:"kind" validate:"required,oneof=movie series course book podcast"`
	Year        int     `json:"year" validate:"required,gte=1800,lte=2030"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// UpdateParams replaces the descriptive fields of an item
type UpdateParams struct {
	Title       string  `json:"title" validate:"required,min=1,max=200"`
	Kind        Kind    `json:"kind" validate:"required,oneof=movie series course book podcast"`
	Year        int     `json:"year" validate:"required,gte=1800,lte=2030"`
	Description *string `json:"description" validate:"omitempty,max=1000"`
}

// StatusParams changes the watch status and rating of an item
type StatusParams struct {
	Status WatchStatus `json:"status" validate:"required,oneof=to_watch watching watched"`
	Rating *int        `json:"rating" validate:"omitempty,gte=1,lte=10"`
}

// Filter narrows a listing
type Filter struct {
	Kind   *Kind
	Status *WatchStatus
}

// Matches reports whether item passes the filter
func (f Filter) Matches(item *Item) bool {
	if f.Kind != nil && item.Kind != *f.Kind {
		return false
	}
	if f.Status != nil && item.Status != *f.Status {
		return false
	}
	return true
}
