package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"hotel-backend/models"
	"hotel-backend/services"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// GormStore keeps the snapshot in four MySQL tables, one row per record.
type GormStore struct {
	DB      *gorm.DB
	savedAt *time.Time
	log     *zap.Logger
}

// NewGormStore migrates the record tables and returns the store.
func NewGormStore(db *gorm.DB, logger *zap.Logger) (*GormStore, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := db.AutoMigrate(
		&models.RoomRecord{},
		&models.ReservationRecord{},
		&models.ServiceRecord{},
		&models.EmployeeRecord{},
	); err != nil {
		return nil, fmt.Errorf("migrate record tables: %w", err)
	}
	return &GormStore{DB: db, log: logger}, nil
}

func (s *GormStore) Load(ctx context.Context) (services.Snapshot, error) {
	db := s.DB.WithContext(ctx)
	snap := services.Snapshot{
		Rooms:        []models.RoomRecord{},
		Reservations: []models.ReservationRecord{},
		Services:     []models.ServiceRecord{},
		Employees:    []models.EmployeeRecord{},
	}
	if err := db.Order("number").Find(&snap.Rooms).Error; err != nil {
		return snap, fmt.Errorf("load rooms: %w", err)
	}
	if err := db.Order("code").Find(&snap.Reservations).Error; err != nil {
		return snap, fmt.Errorf("load reservations: %w", err)
	}
	if err := db.Order("code").Find(&snap.Services).Error; err != nil {
		return snap, fmt.Errorf("load service requests: %w", err)
	}
	if err := db.Order("code").Find(&snap.Employees).Error; err != nil {
		return snap, fmt.Errorf("load employees: %w", err)
	}
	return snap, nil
}

// Save replaces the stored rows with the snapshot in one transaction.
func (s *GormStore) Save(ctx context.Context, snap services.Snapshot) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := replaceAll(tx, &models.RoomRecord{}, snap.Rooms); err != nil {
			return err
		}
		if err := replaceAll(tx, &models.ReservationRecord{}, snap.Reservations); err != nil {
			return err
		}
		if err := replaceAll(tx, &models.ServiceRecord{}, snap.Services); err != nil {
			return err
		}
		return replaceAll(tx, &models.EmployeeRecord{}, snap.Employees)
	})
	if err != nil {
		if isDuplicateKey(err) {
			return fmt.Errorf("save snapshot: %w", services.ErrDuplicate)
		}
		return fmt.Errorf("save snapshot: %w", err)
	}

	now := time.Now()
	s.savedAt = &now
	s.log.Info("snapshot saved to database",
		zap.Int("rooms", len(snap.Rooms)),
		zap.Int("reservations", len(snap.Reservations)),
		zap.Int("services", len(snap.Services)),
		zap.Int("employees", len(snap.Employees)),
	)
	return nil
}

func replaceAll[T any](tx *gorm.DB, model *T, rows []T) error {
	if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return tx.CreateInBatches(&rows, 100).Error
}

func isDuplicateKey(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Info reports the row count per table.
func (s *GormStore) Info(ctx context.Context) (Info, error) {
	db := s.DB.WithContext(ctx)
	info := Info{Driver: "mysql", Location: db.Migrator().CurrentDatabase(), SavedAt: s.savedAt}

	tables := []struct {
		name  string
		model any
	}{
		{"rooms", &models.RoomRecord{}},
		{"reservations", &models.ReservationRecord{}},
		{"service_requests", &models.ServiceRecord{}},
		{"employees", &models.EmployeeRecord{}},
	}
	for _, t := range tables {
		entry := EntryInfo{Name: t.name, Exists: db.Migrator().HasTable(t.model)}
		if entry.Exists {
			if err := db.Model(t.model).Count(&entry.Records).Error; err != nil {
				return info, fmt.Errorf("count %s: %w", t.name, err)
			}
		}
		info.Entries = append(info.Entries, entry)
	}
	return info, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
