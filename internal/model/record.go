package model

import "time"

// ContentRecord is one CMS record mirrored into the snapshot database.
// Payload holds the record exactly as the content layer returned it.
type ContentRecord struct {
	Kind      string    `gorm:"primaryKey;size:64" json:"kind"`
	ContentID string    `gorm:"primaryKey;size:128" json:"id"`
	Slug      string    `gorm:"index;size:256" json:"slug,omitempty"`
	Title     string    `gorm:"size:512" json:"title,omitempty"`
	Payload   string    `gorm:"type:text;not null" json:"-"`
	RevisedAt string    `gorm:"size:64" json:"revisedAt,omitempty"`
	SyncedAt  time.Time `gorm:"not null" json:"syncedAt"`
}
