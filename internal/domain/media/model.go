// Package media stores recorded capture clips (video and audio) on disk,
// one directory per patient.
package media

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	KindVideo = "video"
	KindAudio = "audio"
)

var (
	ErrEmptyPayload   = errors.New("capture payload is empty")
	ErrInvalidPayload = errors.New("capture payload is not valid base64")
)

// Clip describes one stored recording.
type Clip struct {
	ID          string    `json:"id"`
	PatientID   string    `json:"patient_id"`
	Kind        string    `json:"kind"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Size        int64     `json:"size"`
	Path        string    `json:"path"`
	CreatedAt   time.Time `json:"created_at"`
}

// CapturePayload is what the browser recorder posts back: base64 content
// plus enough metadata to name the file.
type CapturePayload struct {
	Data     string `json:"data"`
	MIME     string `json:"mime"`
	Filename string `json:"filename"`
}

// Decode returns the raw bytes of the payload. Data URL prefixes
// ("data:audio/webm;base64,....") are tolerated and stripped.
func (p CapturePayload) Decode() ([]byte, error) {
	data := p.Data
	if idx := strings.Index(data, ","); idx >= 0 && strings.HasPrefix(data, "data:") {
		data = data[idx+1:]
	}
	if data == "" {
		return nil, ErrEmptyPayload
	}
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if len(raw) == 0 {
		return nil, ErrEmptyPayload
	}
	return raw, nil
}

// DefaultFilename picks a name when the recorder did not supply one.
func (p CapturePayload) DefaultFilename(kind string, now time.Time) string {
	if p.Filename != "" {
		return p.Filename
	}
	ext := ".webm"
	if p.MIME == "audio/wav" {
		ext = ".wav"
	}
	return fmt.Sprintf("%s_recording_%d%s", kind, now.Unix(), ext)
}
