package patient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGStore keeps one row per patient record. It exists for deployments where
// the wholesale-file store's lost-update window is unacceptable.
type PGStore struct {
	pool *pgxpool.Pool
}

func NewPGStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// InitSchema creates the patient_record table.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS patient_record (
			key        TEXT PRIMARY KEY,
			patient_id TEXT NOT NULL UNIQUE,
			record     JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("create patient_record table: %w", err)
	}
	return nil
}

func (s *PGStore) LoadAll(ctx context.Context) (map[string]*Patient, error) {
	rows, err := s.pool.Query(ctx, `SELECT key, record FROM patient_record`)
	if err != nil {
		return nil, fmt.Errorf("load patient records: %w", err)
	}
	defer rows.Close()

	records := map[string]*Patient{}
	for rows.Next() {
		var key string
		var data []byte
		if err := rows.Scan(&key, &data); err != nil {
			return nil, fmt.Errorf("scan patient record: %w", err)
		}
		p := &Patient{}
		if err := json.Unmarshal(data, p); err != nil {
			return nil, fmt.Errorf("decode patient record %s: %w", key, err)
		}
		records[key] = p
	}
	return records, rows.Err()
}

func (s *PGStore) SaveAll(ctx context.Context, records map[string]*Patient) error {
	for _, p := range records {
		if err := s.Put(ctx, p); err != nil {
			return err
		}
	}
	return nil
}

func (s *PGStore) Get(ctx context.Context, patientID string) (*Patient, error) {
	var data []byte
	err := s.pool.QueryRow(ctx,
		`SELECT record FROM patient_record WHERE patient_id = $1`, patientID).Scan(&data)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, NewNotFoundError(patientID)
	}
	if err != nil {
		return nil, fmt.Errorf("get patient record: %w", err)
	}

	p := &Patient{}
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("decode patient record: %w", err)
	}
	return p, nil
}

func (s *PGStore) Put(ctx context.Context, p *Patient) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode patient record: %w", err)
	}

	_, err = s.pool.Exec(ctx, `
		INSERT INTO patient_record (key, patient_id, record, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (key) DO UPDATE SET record = EXCLUDED.record, updated_at = now()`,
		Key(p.PatientID), p.PatientID, data)
	if err != nil {
		return fmt.Errorf("upsert patient record: %w", err)
	}
	return nil
}
