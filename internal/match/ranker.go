package match

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/internmatch/internmatch/internal/catalog"
	"github.com/internmatch/internmatch/internal/classifier"
	"go.uber.org/zap"
)

// Recommendation is a scored internship with the reasons that
// contributed to the score, one reason per contributing factor.
type Recommendation struct {
	Internship catalog.Internship `json:"internship"`
	Score      float64            `json:"score"`
	Reasons    []string           `json:"reasons"`
}

// Explanation returns the joined reason list, or a generic fallback
// when no individual factor contributed.
func (r Recommendation) Explanation() string {
	if len(r.Reasons) == 0 {
		return "Best overall fit based on profile."
	}
	return strings.Join(r.Reasons, " ")
}

// CareerSuggestion is a hybrid-variant result: a career label, its
// fused score and the rationale behind it.
type CareerSuggestion struct {
	Career    string  `json:"career"`
	Score     float64 `json:"score"`
	Rationale string  `json:"rationale"`
}

// Recommender ranks the internship catalog against a profile using the
// rule-based multi-factor scorer. The catalog is read-only after
// construction, so one recommender serves concurrent requests.
type Recommender struct {
	items  []catalog.Internship
	scorer *Scorer
	logger *zap.Logger
}

// NewRecommender creates a recommender over the given catalog. A nil
// logger disables logging.
func NewRecommender(items []catalog.Internship, scorer *Scorer, logger *zap.Logger) *Recommender {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommender{items: items, scorer: scorer, logger: logger}
}

// Recommend scores every catalog item, sorts descending by score with
// ties keeping catalog order, drops non-positive scores and truncates
// to limit. A limit of zero or less returns all positive-scoring items.
func (r *Recommender) Recommend(p Profile, limit int) []Recommendation {
	ranked := make([]Recommendation, 0, len(r.items))
	for _, item := range r.items {
		ranked = append(ranked, r.scorer.Score(p, item))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	results := ranked[:0]
	for _, rec := range ranked {
		if rec.Score > 0 {
			results = append(results, rec)
		}
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	r.logger.Debug("ranked internship catalog",
		zap.Int("catalog_size", len(r.items)),
		zap.Int("returned", len(results)),
	)
	return results
}

// HybridConfig configures the hybrid recommender.
type HybridConfig struct {
	// TopN is how many of the classifier's highest-probability careers
	// are fused and returned. Must be at least 1.
	TopN int
	// Boost holds the rule-based alignment boost constants.
	Boost BoostWeights
	// DropNonPositive removes suggestions with a non-positive fused
	// score. Off by default: a proper classifier assigns positive mass
	// to every ranked label.
	DropNonPositive bool
}

// HybridRecommender fuses an external classifier's career probabilities
// with rule-based alignment boosts computed from the career reference
// dataset.
type HybridRecommender struct {
	classifier classifier.Classifier
	careers    *catalog.Careers
	fuser      *Fuser
	cfg        HybridConfig
	logger     *zap.Logger
}

// NewHybridRecommender creates a hybrid recommender. TopN is validated
// here rather than at scoring time.
func NewHybridRecommender(cls classifier.Classifier, careers *catalog.Careers, cfg HybridConfig, logger *zap.Logger) (*HybridRecommender, error) {
	if cfg.TopN < 1 {
		return nil, fmt.Errorf("top_n must be at least 1, got %d", cfg.TopN)
	}
	if err := cfg.Boost.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &HybridRecommender{
		classifier: cls,
		careers:    careers,
		fuser:      NewFuser(cfg.Boost, logger),
		cfg:        cfg,
		logger:     logger,
	}, nil
}

// Recommend asks the classifier for career probabilities, fuses the
// top-N labels with their rule-based boosts and returns the
// suggestions in probability order.
func (h *HybridRecommender) Recommend(ctx context.Context, p Profile) ([]CareerSuggestion, error) {
	pred, err := h.classifier.Probabilities(ctx, p.Features())
	if err != nil {
		return nil, fmt.Errorf("classify profile: %w", err)
	}

	ranked := pred.Ranked()
	if len(ranked) > h.cfg.TopN {
		ranked = ranked[:h.cfg.TopN]
	}

	results := make([]CareerSuggestion, 0, len(ranked))
	for _, label := range ranked {
		suggestion := h.fuser.Fuse(p, label, pred.Probs[label], h.careers.RecordFor(label))
		if h.cfg.DropNonPositive && suggestion.Score <= 0 {
			continue
		}
		results = append(results, suggestion)
	}

	h.logger.Debug("fused classifier prediction",
		zap.Int("labels", len(pred.Labels)),
		zap.Int("returned", len(results)),
	)
	return results, nil
}
