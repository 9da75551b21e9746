package storage

import (
	"context"
	"testing"
)

func TestMemoryStore(t *testing.T) {
	var store Store = NewMemoryStore()
	ctx := context.Background()

	snap, err := store.Load(ctx)
	if err != nil || !snap.Empty() {
		t.Fatalf("Load on new store = %+v, %v", snap, err)
	}

	if err := store.Save(ctx, seededSnapshot(t)); err != nil {
		t.Fatalf("Save: %v", err)
	}
	snap, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(snap.Rooms) != 12 || len(snap.Employees) != 8 {
		t.Fatalf("loaded %d rooms, %d employees", len(snap.Rooms), len(snap.Employees))
	}

	info, err := store.Info(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if info.Driver != "memory" || info.SavedAt == nil || info.Entries[0].Records != 12 {
		t.Fatalf("info = %+v", info)
	}
	if err := store.Close(); err != nil {
		t.Fatal(err)
	}
}
