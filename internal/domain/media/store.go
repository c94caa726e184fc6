package media

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Saver persists a decoded capture for a patient.
type Saver interface {
	Save(ctx context.Context, patientID, kind string, payload CapturePayload) (*Clip, error)
}

// DiskStore writes clips under baseDir/<patientID>/.
type DiskStore struct {
	baseDir string
	logger  zerolog.Logger
	now     func() time.Time
}

func NewDiskStore(baseDir string, logger zerolog.Logger) *DiskStore {
	return &DiskStore{baseDir: baseDir, logger: logger, now: time.Now}
}

// Save decodes the payload and writes it to disk. The stored file name is
// prefixed with a fresh UUID so repeated captures never overwrite each other.
func (s *DiskStore) Save(_ context.Context, patientID, kind string, payload CapturePayload) (*Clip, error) {
	raw, err := payload.Decode()
	if err != nil {
		return nil, err
	}

	dir := filepath.Join(s.baseDir, patientID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating media dir: %w", err)
	}

	id := uuid.New().String()
	name := sanitizeFilename(payload.DefaultFilename(kind, s.now()))
	path := filepath.Join(dir, id+"_"+name)

	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return nil, fmt.Errorf("writing clip: %w", err)
	}

	clip := &Clip{
		ID:          id,
		PatientID:   patientID,
		Kind:        kind,
		FileName:    name,
		ContentType: payload.MIME,
		Size:        int64(len(raw)),
		Path:        path,
		CreatedAt:   s.now().UTC(),
	}

	s.logger.Info().
		Str("patient_id", patientID).
		Str("kind", kind).
		Str("path", path).
		Int64("size", clip.Size).
		Msg("capture stored")

	return clip, nil
}

// sanitizeFilename strips path separators and anything else that could
// escape the patient directory.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
	if name == "" || name == "." || name == ".." {
		name = "capture"
	}
	return name
}
