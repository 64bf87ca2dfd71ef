package vader

import (
	"context"
	"testing"
)

func TestAnalyzer_Score(t *testing.T) {
	a := New()
	ctx := context.Background()

	pos, err := a.Score(ctx, "I am thrilled and overjoyed!")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pos <= 0 {
		t.Errorf("expected positive compound for enthusiastic text, got %v", pos)
	}

	neg, err := a.Score(ctx, "This is the worst day of my life")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if neg >= 0 {
		t.Errorf("expected negative compound for despairing text, got %v", neg)
	}

	if pos < -1 || pos > 1 || neg < -1 || neg > 1 {
		t.Errorf("compound scores out of range: %v, %v", pos, neg)
	}
}

func TestAnalyzer_Deterministic(t *testing.T) {
	a := New()
	first, _ := a.Score(context.Background(), "This is fine I guess")
	second, _ := a.Score(context.Background(), "This is fine I guess")
	if first != second {
		t.Errorf("same text must score identically: %v vs %v", first, second)
	}
}
