package classifier

import "context"

// Static is a classifier that always returns the same prediction. It
// backs tests and offline runs where the classification service is not
// available.
type Static struct {
	labels []string
	probs  map[string]float64
}

// NewStatic creates a static classifier over the given label ordering
// and probabilities.
func NewStatic(labels []string, probs map[string]float64) *Static {
	return &Static{labels: labels, probs: probs}
}

// Probabilities returns a copy of the fixed prediction.
func (s *Static) Probabilities(_ context.Context, _ Features) (*Prediction, error) {
	pred := &Prediction{
		Labels: make([]string, len(s.labels)),
		Probs:  make(map[string]float64, len(s.probs)),
	}
	copy(pred.Labels, s.labels)
	for label, p := range s.probs {
		pred.Probs[label] = p
	}
	return pred, nil
}
