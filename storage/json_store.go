package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"hotel-backend/models"
	"hotel-backend/services"

	"go.uber.org/zap"
)

const (
	roomsFile        = "rooms.json"
	reservationsFile = "reservations.json"
	servicesFile     = "services.json"
	employeesFile    = "employees.json"
)

// JSONStore keeps one JSON array per collection under a data directory.
type JSONStore struct {
	dir     string
	mu      sync.Mutex
	savedAt *time.Time
	log     *zap.Logger
}

func NewJSONStore(dir string, logger *zap.Logger) (*JSONStore, error) {
	if dir == "" {
		dir = "data"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &JSONStore{dir: dir, log: logger}, nil
}

func (s *JSONStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

// Load reads every collection file. A missing file is an empty collection;
// a malformed one is logged and also treated as empty.
func (s *JSONStore) Load(ctx context.Context) (services.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap services.Snapshot
	var err error
	if snap.Rooms, err = readRecords[models.RoomRecord](s, roomsFile); err != nil {
		return snap, err
	}
	if snap.Reservations, err = readRecords[models.ReservationRecord](s, reservationsFile); err != nil {
		return snap, err
	}
	if snap.Services, err = readRecords[models.ServiceRecord](s, servicesFile); err != nil {
		return snap, err
	}
	if snap.Employees, err = readRecords[models.EmployeeRecord](s, employeesFile); err != nil {
		return snap, err
	}
	return snap, ctx.Err()
}

func readRecords[T any](s *JSONStore, name string) ([]T, error) {
	content, err := os.ReadFile(s.path(name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	if len(content) == 0 {
		return []T{}, nil
	}

	var out []T
	if err := json.Unmarshal(content, &out); err != nil {
		s.log.Warn("ignoring malformed data file", zap.String("file", s.path(name)), zap.Error(err))
		return []T{}, nil
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

// Save writes each collection to a temp file and renames it into place.
func (s *JSONStore) Save(ctx context.Context, snap services.Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeRecords(s, roomsFile, snap.Rooms); err != nil {
		return err
	}
	if err := writeRecords(s, reservationsFile, snap.Reservations); err != nil {
		return err
	}
	if err := writeRecords(s, servicesFile, snap.Services); err != nil {
		return err
	}
	if err := writeRecords(s, employeesFile, snap.Employees); err != nil {
		return err
	}

	now := time.Now()
	s.savedAt = &now
	s.log.Info("snapshot saved",
		zap.String("dir", s.dir),
		zap.Int("rooms", len(snap.Rooms)),
		zap.Int("reservations", len(snap.Reservations)),
		zap.Int("services", len(snap.Services)),
		zap.Int("employees", len(snap.Employees)),
	)
	return nil
}

func writeRecords[T any](s *JSONStore, name string, records []T) error {
	if records == nil {
		records = []T{}
	}
	body, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", name, err)
	}

	target := s.path(name)
	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, body, 0o644); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := os.Rename(tmp, target); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace %s: %w", name, err)
	}
	return nil
}

// Info reports size, modification time and record count per file.
func (s *JSONStore) Info(ctx context.Context) (Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	info := Info{Driver: "json", Location: s.dir, SavedAt: s.savedAt}
	for _, name := range []string{roomsFile, reservationsFile, servicesFile, employeesFile} {
		entry := EntryInfo{Name: name}
		st, err := os.Stat(s.path(name))
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return info, fmt.Errorf("stat %s: %w", name, err)
		default:
			modified := st.ModTime()
			entry.Exists = true
			entry.Size = st.Size()
			entry.Modified = &modified
			entry.Records = countRecords(s.path(name))
		}
		info.Entries = append(info.Entries, entry)
	}
	return info, ctx.Err()
}

func countRecords(path string) int64 {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0
	}
	var items []json.RawMessage
	if err := json.Unmarshal(content, &items); err != nil {
		return 0
	}
	return int64(len(items))
}

func (s *JSONStore) Close() error { return nil }
