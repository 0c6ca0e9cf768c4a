package httpapi

import (
	"github.com/internmatch/internmatch/internal/match"
	"go.uber.org/zap"
)

// Deps aggregates the collaborators the handlers need. Hybrid may be
// nil when the classification service is not configured; the careers
// endpoint then reports the capability as unavailable.
type Deps struct {
	Recommender  *match.Recommender
	Hybrid       *match.HybridRecommender
	Logger       *zap.Logger
	DefaultLimit int
}
