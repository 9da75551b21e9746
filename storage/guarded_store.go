package storage

import (
	"context"
	"errors"
	"sync"

	"hotel-backend/services"
)

// ErrNotLoaded is returned by GuardedStore.Save until a Load has succeeded.
var ErrNotLoaded = errors.New("store was not loaded, refusing to overwrite it")

// GuardedStore refuses to save over data it never read. A registry that
// started empty after a failed load must not replace the stored snapshot.
type GuardedStore struct {
	Store

	mu     sync.Mutex
	loaded bool
}

func Guard(s Store) *GuardedStore {
	return &GuardedStore{Store: s}
}

func (g *GuardedStore) Load(ctx context.Context) (services.Snapshot, error) {
	snap, err := g.Store.Load(ctx)
	if err == nil {
		g.mu.Lock()
		g.loaded = true
		g.mu.Unlock()
	}
	return snap, err
}

func (g *GuardedStore) Save(ctx context.Context, snap services.Snapshot) error {
	if !g.Loaded() {
		return ErrNotLoaded
	}
	return g.Store.Save(ctx, snap)
}

func (g *GuardedStore) Loaded() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.loaded
}
