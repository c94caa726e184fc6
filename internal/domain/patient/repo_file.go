package patient

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// FileStore is the default JSON-file store. The whole mapping is read per
// access and rewritten per mutation; a corrupt file loads as an empty store.
type FileStore struct {
	path   string
	logger zerolog.Logger
}

func NewFileStore(path string, logger zerolog.Logger) *FileStore {
	return &FileStore{path: path, logger: logger}
}

func (s *FileStore) LoadAll(ctx context.Context) (map[string]*Patient, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*Patient{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	records := map[string]*Patient{}
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn().Err(err).Str("path", s.path).Msg("store file unparseable, treating as empty")
		return map[string]*Patient{}, nil
	}

	// Legacy records may predate patient IDs; backfill and rewrite.
	backfilled := false
	for _, p := range records {
		if p.PatientID == "" {
			p.PatientID = GenerateUniqueID(usedIDs(records))
			backfilled = true
		}
	}
	if backfilled {
		if err := s.SaveAll(ctx, records); err != nil {
			return nil, fmt.Errorf("backfill patient ids: %w", err)
		}
	}

	return records, nil
}

func (s *FileStore) SaveAll(_ context.Context, records map[string]*Patient) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write store file: %w", err)
	}
	return nil
}

func (s *FileStore) Get(ctx context.Context, patientID string) (*Patient, error) {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range records {
		if p.PatientID == patientID {
			return p, nil
		}
	}
	return nil, NewNotFoundError(patientID)
}

func (s *FileStore) Put(ctx context.Context, p *Patient) error {
	records, err := s.LoadAll(ctx)
	if err != nil {
		return err
	}
	records[Key(p.PatientID)] = p
	return s.SaveAll(ctx, records)
}

func usedIDs(records map[string]*Patient) map[string]bool {
	used := make(map[string]bool, len(records))
	for _, p := range records {
		if p.PatientID != "" {
			used[p.PatientID] = true
		}
	}
	return used
}
