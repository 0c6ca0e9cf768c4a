package classifier

import (
	"context"
	"sort"
)

// Features is the profile representation sent to the classification
// service: free-text skills/interests/education plus an optional age.
type Features struct {
	Skills    string `json:"skills"`
	Interests string `json:"interests"`
	Education string `json:"education"`
	Age       *int   `json:"age,omitempty"`
}

// Prediction holds a classifier's per-label probabilities along with
// the label ordering the probability vector was produced in.
type Prediction struct {
	Labels []string
	Probs  map[string]float64
}

// Ranked returns the labels sorted by probability descending. Labels
// with equal probability keep their original classifier order, so the
// ranking is deterministic for a given prediction.
func (p *Prediction) Ranked() []string {
	out := make([]string, len(p.Labels))
	copy(out, p.Labels)
	sort.SliceStable(out, func(i, j int) bool {
		return p.Probs[out[i]] > p.Probs[out[j]]
	})
	return out
}

// Classifier produces class probabilities for a candidate profile. The
// underlying model is a black box: implementations may call an external
// service or return canned values, as long as the probabilities cover
// the full label set known to the catalog.
type Classifier interface {
	Probabilities(ctx context.Context, f Features) (*Prediction, error)
}
