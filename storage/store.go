package storage

import (
	"context"
	"time"

	"hotel-backend/services"
)

// Store persists registry snapshots. Load on an empty store returns an
// empty snapshot, never an error.
type Store interface {
	Load(ctx context.Context) (services.Snapshot, error)
	Save(ctx context.Context, snap services.Snapshot) error
	Info(ctx context.Context) (Info, error)
	Close() error
}

// Info describes where a store keeps its data.
type Info struct {
	Driver   string      `json:"driver"`
	Location string      `json:"location"`
	Entries  []EntryInfo `json:"entries"`
	SavedAt  *time.Time  `json:"saved_at,omitempty"`
}

// EntryInfo is one file or table of a store.
type EntryInfo struct {
	Name     string     `json:"name"`
	Exists   bool       `json:"exists"`
	Records  int64      `json:"records"`
	Size     int64      `json:"size,omitempty"`
	Modified *time.Time `json:"modified,omitempty"`
}
