package media

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestItem(ownerID int64, title string, year int, kind Kind) *Item {
	return &Item{
		OwnerID: ownerID,
		Title:   title,
		Kind:    kind,
		Year:    year,
		Status:  StatusToWatch,
	}
}

func TestMemoryStoreInsertAssignsIDAndTime(t *testing.T) {
	store := NewMemoryStore()
	fixed := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	ctx := context.Background()

	first := newTestItem(1, "Alien", 1979, KindMovie)
	second := newTestItem(1, "Aliens", 1986, KindMovie)
	if err := store.Insert(ctx, first); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}
	if err := store.Insert(ctx, second); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Errorf("ids = %d, %d, want 1, 2", first.ID, second.ID)
	}
	if !first.CreatedAt.Equal(fixed) {
		t.Errorf("CreatedAt = %v, want %v", first.CreatedAt, fixed)
	}
}

func TestMemoryStoreInsertRejectsDuplicate(t *testing.T) {
	tests := []struct {
		name    string
		ownerID int64
		title   string
		year    int
		kind    Kind
		wantErr error
	}{
		{"same entry", 1, "Alien", 1979, KindMovie, ErrAlreadyExists},
		{"title differs in case", 1, "ALIEN", 1979, KindMovie, ErrAlreadyExists},
		{"different year", 1, "Alien", 1980, KindMovie, nil},
		{"different kind", 1, "Alien", 1979, KindBook, nil},
		{"different owner", 2, "Alien", 1979, KindMovie, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			ctx := context.Background()
			if err := store.Insert(ctx, newTestItem(1, "Alien", 1979, KindMovie)); err != nil {
				t.Fatalf("Insert() error = %v", err)
			}

			err := store.Insert(ctx, newTestItem(tt.ownerID, tt.title, tt.year, tt.kind))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Insert() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestMemoryStoreListFilters(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	watched := newTestItem(1, "LOST", 2004, KindSeries)
	watched.Status = StatusWatched
	for _, item := range []*Item{
		newTestItem(1, "Die Hard", 1988, KindMovie),
		watched,
		newTestItem(1, "Heat", 1995, KindMovie),
		newTestItem(2, "Other Owner", 2001, KindMovie),
	} {
		if err := store.Insert(ctx, item); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	movie := KindMovie
	series := KindSeries
	toWatch := StatusToWatch
	watchedStatus := StatusWatched

	tests := []struct {
		name       string
		filter     Filter
		wantTitles []string
	}{
		{"no filter", Filter{}, []string{"Die Hard", "LOST", "Heat"}},
		{"by kind", Filter{Kind: &movie}, []string{"Die Hard", "Heat"}},
		{"by status", Filter{Status: &watchedStatus}, []string{"LOST"}},
		{"by kind and status", Filter{Kind: &series, Status: &toWatch}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := store.List(ctx, 1, tt.filter)
			if err != nil {
				t.Fatalf("List() error = %v", err)
			}
			if items == nil {
				t.Fatal("List() returned nil slice")
			}
			if len(items) != len(tt.wantTitles) {
				t.Fatalf("List() returned %d items, want %d", len(items), len(tt.wantTitles))
			}
			for i, want := range tt.wantTitles {
				if items[i].Title != want {
					t.Errorf("items[%d].Title = %q, want %q", i, items[i].Title, want)
				}
			}
		})
	}
}

func TestMemoryStoreGetIsolatesOwners(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	item := newTestItem(1, "Alien", 1979, KindMovie)
	if err := store.Insert(ctx, item); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	if _, err := store.Get(ctx, 2, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() other owner error = %v, want ErrNotFound", err)
	}
	if err := store.Delete(ctx, 2, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Delete() other owner error = %v, want ErrNotFound", err)
	}

	got, err := store.Get(ctx, 1, item.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Title != "Alien" {
		t.Errorf("Title = %q, want %q", got.Title, "Alien")
	}
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	desc := "original"
	item := newTestItem(1, "Alien", 1979, KindMovie)
	item.Description = &desc
	if err := store.Insert(ctx, item); err != nil {
		t.Fatalf("Insert() error = %v", err)
	}

	got, _ := store.Get(ctx, 1, item.ID)
	*got.Description = "changed"
	got.Title = "changed"

	again, _ := store.Get(ctx, 1, item.ID)
	if again.Title != "Alien" || *again.Description != "original" {
		t.Errorf("stored item was mutated through a returned copy: %+v", again)
	}
}

func TestMemoryStoreUpdate(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	alien := newTestItem(1, "Alien", 1979, KindMovie)
	heat := newTestItem(1, "Heat", 1995, KindMovie)
	for _, item := range []*Item{alien, heat} {
		if err := store.Insert(ctx, item); err != nil {
			t.Fatalf("Insert() error = %v", err)
		}
	}

	t.Run("keeps creation time", func(t *testing.T) {
		changed := *alien
		changed.Title = "Alien Director's Cut"
		changed.CreatedAt = time.Time{}
		if err := store.Update(ctx, &changed); err != nil {
			t.Fatalf("Update() error = %v", err)
		}
		if !changed.CreatedAt.Equal(alien.CreatedAt) {
			t.Errorf("CreatedAt = %v, want %v", changed.CreatedAt, alien.CreatedAt)
		}
	})

	t.Run("duplicate of another item", func(t *testing.T) {
		changed := *heat
		changed.Title = "alien director's cut"
		changed.Year = 1979
		if err := store.Update(ctx, &changed); !errors.Is(err, ErrAlreadyExists) {
			t.Errorf("Update() error = %v, want ErrAlreadyExists", err)
		}
	})

	t.Run("missing item", func(t *testing.T) {
		missing := newTestItem(1, "Nope", 2000, KindMovie)
		missing.ID = 99
		if err := store.Update(ctx, missing); !errors.Is(err, ErrNotFound) {
			t.Errorf("Update() error = %v, want ErrNotFound", err)
		}
	})
}
