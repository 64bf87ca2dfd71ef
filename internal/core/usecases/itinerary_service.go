package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/safarapp/safar-api/internal/core/ports"
	"github.com/safarapp/safar-api/internal/pkg/metrics"
)

// DefaultItineraryDays is used when a request does not name a day count.
const DefaultItineraryDays = 3

// ItineraryService composes a natural-language prompt and forwards it to the
// generative text provider. The mood is not validated against the category
// table and the day count is forwarded as given.
type ItineraryService struct {
	generator ports.TextGenerator
}

// NewItineraryService creates a new ItineraryService. A nil generator is
// allowed so the API can start without provider credentials; generation then
// fails per request.
func NewItineraryService(generator ports.TextGenerator) *ItineraryService {
	return &ItineraryService{generator: generator}
}

// Generate returns the provider's generated itinerary text unmodified.
func (s *ItineraryService) Generate(ctx context.Context, mood, destination string, days int) (string, error) {
	if destination == "" {
		return "", fmt.Errorf("destination is required")
	}
	if s.generator == nil {
		return "", fmt.Errorf("text generator not configured")
	}

	text, err := s.generator.Generate(ctx, BuildPrompt(mood, destination, days))
	if err != nil {
		metrics.ItinerariesGenerated.WithLabelValues("error").Inc()
		slog.Error("itinerary generation failed",
			"destination", destination, "mood", mood, "error", err)
		return "", fmt.Errorf("generate itinerary: %w", err)
	}

	metrics.ItinerariesGenerated.WithLabelValues("ok").Inc()
	return text, nil
}

// BuildPrompt composes the generation prompt sent verbatim to the provider.
func BuildPrompt(mood, destination string, days int) string {
	return fmt.Sprintf(
		"Create a detailed %d-day travel itinerary for %s that suits a %s mood. "+
			"Include daily activities, food recommendations, and best times to visit popular spots.",
		days, destination, mood)
}
