package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/safarapp/safar-api/internal/core/domain"
	"github.com/safarapp/safar-api/internal/core/ports"
	"github.com/safarapp/safar-api/internal/pkg/metrics"
)

// MoodService maps free-form text to exactly one mood category.
type MoodService struct {
	sentiment ports.SentimentAnalyzer
}

// NewMoodService creates a new MoodService.
func NewMoodService(sentiment ports.SentimentAnalyzer) *MoodService {
	return &MoodService{sentiment: sentiment}
}

// Classify returns the mood for the given text. An exact match on a
// configured category key (trimmed, lowercased) short-circuits sentiment
// analysis, letting a caller pre-select a mood. Anything else falls back to
// a compound sentiment score over the original text, which can only ever
// yield happy, relaxed, or adventurous; the finer categories are reachable
// through exact keys alone.
func (s *MoodService) Classify(ctx context.Context, text string) (domain.Mood, error) {
	key := strings.ToLower(strings.TrimSpace(text))
	if domain.KnownMood(key) {
		slog.Info("user-specified mood", "mood", key)
		metrics.MoodsClassified.WithLabelValues(key, "exact").Inc()
		return domain.Mood(key), nil
	}

	compound, err := s.sentiment.Score(ctx, text)
	if err != nil {
		return "", fmt.Errorf("sentiment score: %w", err)
	}
	slog.Debug("sentiment fallback", "compound", compound)

	var mood domain.Mood
	switch {
	case compound >= 0.5:
		mood = domain.MoodHappy
	case compound > -0.2:
		mood = domain.MoodRelaxed
	default:
		mood = domain.MoodAdventurous
	}
	metrics.MoodsClassified.WithLabelValues(string(mood), "sentiment").Inc()
	return mood, nil
}

// Suggest classifies text and returns the destination set for the resulting
// mood. A mood missing from the destination table yields an empty set, not
// an error.
func (s *MoodService) Suggest(ctx context.Context, text string) (domain.Mood, []string, error) {
	mood, err := s.Classify(ctx, text)
	if err != nil {
		return "", nil, err
	}
	return mood, domain.DestinationsFor(mood), nil
}
