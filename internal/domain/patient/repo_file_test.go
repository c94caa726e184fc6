package patient

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/neurohealth/neuroscreen/internal/domain/assessment"
)

func newTestFileStore(t *testing.T) *FileStore {
	t.Helper()
	path := filepath.Join(t.TempDir(), "users.json")
	return NewFileStore(path, zerolog.Nop())
}

func TestFileStore_EmptyWhenMissing(t *testing.T) {
	store := newTestFileStore(t)

	records, err := store.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty store, got %d records", len(records))
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	store := newTestFileStore(t)
	ctx := context.Background()

	p := &Patient{
		PatientID:      "123456",
		Name:           "Asha",
		Age:            45,
		BloodGroup:     "O+",
		Phone:          "9876543210",
		AssignedDoctor: "Dr. Devi",
		CreatedDate:    "2025-01-15",
		Visits: []Visit{
			{
				Date:     "2025-01-15",
				Reason:   "Memory concerns",
				Hospital: DefaultHospital,
				Doctor:   "Dr. Devi",
				Status:   "completed",
				DoctorAssessment: &assessment.ClinicalAssessment{
					Name: "Asha", MMSE: 18, MoCA: 19, UPDRS: 25,
					FamilyHistory:   []string{"Alzheimer's"},
					QuickScores:     assessment.QuickScores{Cognitive: 60, Motor: 50, Speech: 70, Mood: "Normal"},
					AssessingDoctor: "Dr. Devi",
					AssessmentDate:  "2025-01-15",
				},
			},
		},
	}

	if err := store.Put(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := store.Get(ctx, "123456")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(p, got) {
		t.Errorf("round-trip mismatch:\nwant %+v\ngot  %+v", p, got)
	}
}

func TestFileStore_GetUnknown(t *testing.T) {
	store := newTestFileStore(t)

	_, err := store.Get(context.Background(), "999999")
	if err == nil {
		t.Fatal("expected error")
	}
	if !IsNotFound(err) {
		t.Errorf("expected not-found error, got %v", err)
	}
}

func TestFileStore_CorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path, zerolog.Nop())

	records, err := store.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty store for corrupt file, got %d records", len(records))
	}
}

func TestFileStore_BackfillsLegacyIDs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")
	legacy := `{"someone@neurohealth.com": {"name": "Legacy", "age": 70, "visits": []}}`
	if err := os.WriteFile(path, []byte(legacy), 0o644); err != nil {
		t.Fatal(err)
	}
	store := NewFileStore(path, zerolog.Nop())

	records, err := store.LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := records["someone@neurohealth.com"]
	if p == nil {
		t.Fatal("legacy record missing")
	}
	if len(p.PatientID) != 6 {
		t.Errorf("expected backfilled 6-digit id, got %q", p.PatientID)
	}

	// The backfill is persisted immediately.
	again, err := NewFileStore(path, zerolog.Nop()).LoadAll(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again["someone@neurohealth.com"].PatientID != p.PatientID {
		t.Error("backfilled id was not persisted")
	}
}
