package main

import (
	"context"
	"errors"
	"testing"

	"hotel-backend/models"
	"hotel-backend/services"
	"hotel-backend/storage"

	"go.uber.org/zap"
)

type unreachableStore struct {
	*storage.MemoryStore
}

func (unreachableStore) Load(ctx context.Context) (services.Snapshot, error) {
	return services.Snapshot{}, context.DeadlineExceeded
}

func TestBootstrapSeedsEmptyStore(t *testing.T) {
	store := storage.Guard(storage.NewMemoryStore())
	hotel := services.NewHotelService("Test Hotel", nil)

	if err := bootstrap(context.Background(), store, hotel, true, zap.NewNop()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if n := len(hotel.Rooms()); n != 12 {
		t.Fatalf("rooms = %d, want seeded 12", n)
	}
	if err := store.Save(context.Background(), hotel.Snapshot()); err != nil {
		t.Fatalf("Save: %v", err)
	}
}

func TestBootstrapKeepsSavedData(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	saved := services.NewHotelService("Saved", nil)
	if _, err := saved.CreateEmployee(models.EmployeeRecord{Type: "Receptionist", Name: "Only One", Shift: "morning"}); err != nil {
		t.Fatal(err)
	}
	if err := mem.Save(ctx, saved.Snapshot()); err != nil {
		t.Fatal(err)
	}

	hotel := services.NewHotelService("Test Hotel", nil)
	if err := bootstrap(ctx, storage.Guard(mem), hotel, true, zap.NewNop()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	if len(hotel.Employees()) != 1 || len(hotel.Rooms()) != 0 {
		t.Fatalf("seed ran over saved data: %d employees, %d rooms", len(hotel.Employees()), len(hotel.Rooms()))
	}
}

func TestBootstrapFailedLoadNeitherSeedsNorSaves(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	store := storage.Guard(unreachableStore{mem})
	hotel := services.NewHotelService("Test Hotel", nil)

	if err := bootstrap(ctx, store, hotel, true, zap.NewNop()); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("bootstrap err = %v", err)
	}
	if n := len(hotel.Rooms()); n != 0 {
		t.Fatalf("seeded %d rooms after a failed load", n)
	}
	if err := store.Save(ctx, hotel.Snapshot()); !errors.Is(err, storage.ErrNotLoaded) {
		t.Fatalf("Save err = %v, want ErrNotLoaded", err)
	}
	if info, _ := mem.Info(ctx); info.SavedAt != nil {
		t.Fatal("underlying store was written")
	}
}
