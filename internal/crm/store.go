package crm

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

// Record is one accepted notification as the CRM keeps it.
type Record struct {
	ID         int64           `json:"id"`
	ReceivedAt time.Time       `json:"received_at"`
	Payload    json.RawMessage `json:"payload"`
}

// Store is an append-only notification log. Records live in memory and are
// mirrored to a JSON lines file when a path is configured, so the log
// survives restarts.
type Store struct {
	mu      sync.Mutex
	records []Record
	nextID  int64
	file    *os.File
}

func NewStore(path string) (*Store, error) {
	s := &Store{nextID: 1}

	if path == "" {
		return s, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open notification log: %w", err)
	}
	s.file = file

	if err = s.load(); err != nil {
		file.Close()
		return nil, err
	}

	return s, nil
}

func (s *Store) load() error {
	dec := json.NewDecoder(s.file)
	for dec.More() {
		var rec Record
		if err := dec.Decode(&rec); err != nil {
			return fmt.Errorf("read notification log: %w", err)
		}
		s.records = append(s.records, rec)
		if rec.ID >= s.nextID {
			s.nextID = rec.ID + 1
		}
	}
	return nil
}

// Append stores one notification and returns the assigned record.
func (s *Store) Append(payload json.RawMessage, receivedAt time.Time) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec := Record{
		ID:         s.nextID,
		ReceivedAt: receivedAt,
		Payload:    payload,
	}

	if s.file != nil {
		line, err := json.Marshal(rec)
		if err != nil {
			return Record{}, fmt.Errorf("marshal record: %w", err)
		}
		if _, err = s.file.Write(append(line, '\n')); err != nil {
			return Record{}, fmt.Errorf("write notification log: %w", err)
		}
	}

	s.records = append(s.records, rec)
	s.nextID++

	return rec, nil
}

// List returns all records in arrival order plus the total count.
func (s *Store) List() ([]Record, int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)

	return out, len(out)
}

func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	return s.file.Close()
}
