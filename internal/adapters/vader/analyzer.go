package vader

import (
	"context"
	"fmt"

	"github.com/jonreiter/govader"
)

// Analyzer scores text with the VADER sentiment lexicon. It implements
// ports.SentimentAnalyzer. Scoring is in-process and deterministic; the
// analyzer itself is read-only after construction and safe for concurrent
// use.
type Analyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

// New builds an Analyzer with the embedded default lexicon.
func New() *Analyzer {
	return &Analyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Score returns the compound polarity in [-1.0, 1.0] for the given text.
func (a *Analyzer) Score(ctx context.Context, text string) (float64, error) {
	if a.sia == nil {
		return 0, fmt.Errorf("sentiment analyzer not initialised")
	}
	return a.sia.PolarityScores(text).Compound, nil
}
