package media

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

func strPtr(s string) *string { return &s }

var demoItems = []CreateParams{
	{Title: "Die Hard", Kind: KindMovie, Year: 1988, Description: strPtr("Hurricane action movie")},
	{Title: "LOST", Kind: KindSeries, Year: 2004, Description: strPtr("Mysterious island series")},
	{Title: "Python Course", Kind: KindCourse, Year: 2025, Description: strPtr("Learn Python programming")},
}

// SeedDemoData adds the demo items the owner does not have yet
func (s *service) SeedDemoData(ctx context.Context, ownerID int64) error {
	added := 0
	for _, params := range demoItems {
		exists, err := s.store.Exists(ctx, ownerID, params.Title, params.Year, params.Kind)
		if err != nil {
			return fmt.Errorf("failed to check demo item: %w", err)
		}
		if exists {
			continue
		}
		if _, err := s.CreateItem(ctx, ownerID, params); err != nil {
			return fmt.Errorf("failed to seed demo item: %w", err)
		}
		added++
	}

	s.logger.Info("demo data seeded",
		zap.Int64("owner_id", ownerID),
		zap.Int("added", added),
	)
	return nil
}
