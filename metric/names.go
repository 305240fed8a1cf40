package metric

import "fmt"

// Predefined metric names shared by the entry package and metric managers.
const (
	MetricTokenPrecision = "token_precision"
	MetricTokenRecall    = "token_recall"
	MetricTokenF1        = "token_f1"
)

// ScoreForMetric returns the epsilon-smoothed per-sentence score selected by
// the given metric name.
func ScoreForMetric(name string, c Counts) (float64, error) {
	score := SentenceScore(c)
	switch name {
	case MetricTokenPrecision:
		return score.Precision, nil
	case MetricTokenRecall:
		return score.Recall, nil
	case MetricTokenF1:
		return score.FMeasure, nil
	default:
		return 0, fmt.Errorf("unsupported metric name: %s", name)
	}
}
