package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"care-site-backend/internal/model"
)

// Store defines the snapshot database operations.
type Store interface {
	// ReplaceKind makes the stored records of kind equal to records: rows are
	// upserted and rows missing from records are deleted, in one transaction.
	ReplaceKind(ctx context.Context, kind string, records []model.ContentRecord) error
	ListKind(ctx context.Context, kind string) ([]model.ContentRecord, error)
	CountByKind(ctx context.Context) (map[string]int64, error)
}

// gormStore implements the Store interface using GORM.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new GORM-backed store.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) ReplaceKind(ctx context.Context, kind string, records []model.ContentRecord) error {
	ids := make([]string, 0, len(records))
	for i := range records {
		records[i].Kind = kind
		ids = append(ids, records[i].ContentID)
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(records) > 0 {
			if err := batchUpsertRecords(tx, records); err != nil {
				return fmt.Errorf("failed to upsert %s records: %w", kind, err)
			}
		}

		prune := tx.Where("kind = ?", kind)
		if len(ids) > 0 {
			prune = prune.Where("content_id NOT IN ?", ids)
		}
		if err := prune.Delete(&model.ContentRecord{}).Error; err != nil {
			return fmt.Errorf("failed to prune %s records: %w", kind, err)
		}
		return nil
	})
}

func (s *gormStore) ListKind(ctx context.Context, kind string) ([]model.ContentRecord, error) {
	var records []model.ContentRecord
	if err := s.db.WithContext(ctx).
		Where("kind = ?", kind).
		Order("content_id").
		Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s records: %w", kind, err)
	}
	return records, nil
}

func (s *gormStore) CountByKind(ctx context.Context) (map[string]int64, error) {
	type countRow struct {
		Kind  string
		Total int64
	}
	var rows []countRow
	if err := s.db.WithContext(ctx).
		Model(&model.ContentRecord{}).
		Select("kind, COUNT(*) as total").
		Group("kind").
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count records: %w", err)
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Kind] = r.Total
	}
	return counts, nil
}

func batchUpsertRecords(tx *gorm.DB, records []model.ContentRecord) error {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}, {Name: "content_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"slug", "title", "payload", "revised_at", "synced_at"}),
	}).CreateInBatches(&records, 100).Error
}
