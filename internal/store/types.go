package store

import (
	"encoding/json"
	"fmt"
	"time"

	"care-site-backend/internal/model"
)

// recordMeta picks the indexable fields out of any content type's JSON.
type recordMeta struct {
	ID        string `json:"id"`
	Slug      string `json:"slug"`
	Title     string `json:"title"`
	Name      string `json:"name"`
	Question  string `json:"question"`
	Position  string `json:"position"`
	RevisedAt string `json:"revisedAt"`
}

// NewRecord converts a content value into a snapshot row. Singleton content
// has no id; fallbackID is used instead.
func NewRecord(kind, fallbackID string, v any, syncedAt time.Time) (model.ContentRecord, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return model.ContentRecord{}, fmt.Errorf("failed to marshal %s record: %w", kind, err)
	}

	var meta recordMeta
	if err := json.Unmarshal(payload, &meta); err != nil {
		return model.ContentRecord{}, fmt.Errorf("failed to read %s record fields: %w", kind, err)
	}

	id := meta.ID
	if id == "" {
		id = fallbackID
	}
	if id == "" {
		return model.ContentRecord{}, fmt.Errorf("%s record has no id", kind)
	}

	title := meta.Title
	for _, alt := range []string{meta.Name, meta.Question, meta.Position} {
		if title == "" {
			title = alt
		}
	}

	return model.ContentRecord{
		Kind:      kind,
		ContentID: id,
		Slug:      meta.Slug,
		Title:     title,
		Payload:   string(payload),
		RevisedAt: meta.RevisedAt,
		SyncedAt:  syncedAt.UTC(),
	}, nil
}
