package analysis

import (
	"context"
	"time"
)

// videoFrameSamples is how many score observations the video stage averages,
// one per capture task.
const videoFrameSamples = 6

// Service runs the mock analysis pipeline for both modalities. The delay
// simulates processing latency; it is the only reason these methods take a
// context.
type Service struct {
	video ScoreSource
	audio ScoreSource
	delay time.Duration
}

func NewService(video, audio ScoreSource, delay time.Duration) *Service {
	return &Service{video: video, audio: audio, delay: delay}
}

func (s *Service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return nil
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// AnalyzeVideo averages one observation per capture task and derives the
// video condition distribution.
func (s *Service) AnalyzeVideo(ctx context.Context) (scores, probs map[string]float64, err error) {
	if err := s.wait(ctx); err != nil {
		return nil, nil, err
	}

	observations := make([]map[string]float64, 0, videoFrameSamples)
	for i := 0; i < videoFrameSamples; i++ {
		observations = append(observations, s.video.Scores())
	}
	scores = AverageScores(observations)
	return scores, Derive(scores, VideoParams), nil
}

// AnalyzeAudio takes a single observation and derives the audio condition
// distribution.
func (s *Service) AnalyzeAudio(ctx context.Context) (scores, probs map[string]float64, err error) {
	if err := s.wait(ctx); err != nil {
		return nil, nil, err
	}

	scores = s.audio.Scores()
	return scores, Derive(scores, AudioParams), nil
}

// Combine blends the two modality distributions.
func (s *Service) Combine(videoProbs, audioProbs map[string]float64) map[string]float64 {
	return Combine(videoProbs, audioProbs)
}
