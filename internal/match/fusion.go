package match

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/internmatch/internmatch/internal/catalog"
	"go.uber.org/zap"
)

// BoostWeights configures the rule-based alignment boost layered onto a
// classifier probability. Unlike Weights these are small additive
// constants, not a convex combination.
type BoostWeights struct {
	Skills    float64
	Interests float64
	Education float64
}

// DefaultBoostWeights returns the standard boost constants.
func DefaultBoostWeights() BoostWeights {
	return BoostWeights{
		Skills:    0.10,
		Interests: 0.05,
		Education: 0.05,
	}
}

// Validate checks that the boost constants are non-negative.
func (w BoostWeights) Validate() error {
	var errs []error
	if w.Skills < 0 {
		errs = append(errs, fmt.Errorf("skills boost must be non-negative, got %v", w.Skills))
	}
	if w.Interests < 0 {
		errs = append(errs, fmt.Errorf("interests boost must be non-negative, got %v", w.Interests))
	}
	if w.Education < 0 {
		errs = append(errs, fmt.Errorf("education boost must be non-negative, got %v", w.Education))
	}
	return errors.Join(errs...)
}

// Fuser combines a classifier's base probability for a career label
// with a rule-based boost computed against the label's reference
// record, producing a calibrated score and a rationale string.
type Fuser struct {
	weights BoostWeights
	logger  *zap.Logger
}

// NewFuser creates a fuser with the given boost weights. A nil logger
// disables logging.
func NewFuser(w BoostWeights, logger *zap.Logger) *Fuser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Fuser{weights: w, logger: logger}
}

// Fuse computes the final score for a career label. The score is the
// base probability plus the alignment boost, capped at 1.0. A label
// with no backing record gets a zero boost and a warning log, never an
// error.
func (f *Fuser) Fuse(p Profile, label string, baseProb float64, record *catalog.CareerRecord) CareerSuggestion {
	var (
		boost            float64
		matchedSkills    TokenSet
		matchedInterests TokenSet
	)

	if record == nil {
		f.logger.Warn("no catalog record for career label, skipping rule-based boost",
			zap.String("career", label),
		)
	} else {
		profileSkills := NewTokenSet(p.Skills...)
		profileInterests := NewTokenSet(p.Interests...)
		careerSkills := NewTokenSet(record.Skills)
		careerInterests := NewTokenSet(record.Interests)

		matchedSkills = profileSkills.Intersect(careerSkills)
		matchedInterests = profileInterests.Intersect(careerInterests)

		skillOverlap := overlapFraction(profileSkills, careerSkills)
		interestOverlap := overlapFraction(profileInterests, careerInterests)
		educationMatch := 0.0
		if edu := Normalize(p.Education); edu != "" && NewTokenSet(record.Education).Contains(edu) {
			educationMatch = 1.0
		}

		boost = f.weights.Skills*skillOverlap +
			f.weights.Interests*interestOverlap +
			f.weights.Education*educationMatch
	}

	return CareerSuggestion{
		Career:    label,
		Score:     math.Min(baseProb+boost, 1.0),
		Rationale: buildRationale(baseProb, boost, matchedSkills, matchedInterests),
	}
}

// buildRationale assembles the semicolon-joined explanation: the model
// score, the boost when positive, and the matched tokens when any
// exist.
func buildRationale(baseProb, boost float64, matchedSkills, matchedInterests TokenSet) string {
	parts := []string{fmt.Sprintf("Model score: %.2f", baseProb)}
	if boost > 0 {
		parts = append(parts, fmt.Sprintf("Rule-based alignment boost: +%.2f", boost))
	}

	var details []string
	if matchedSkills.Len() > 0 {
		details = append(details, fmt.Sprintf("skills: %s", strings.Join(matchedSkills.Sorted(), ", ")))
	}
	if matchedInterests.Len() > 0 {
		details = append(details, fmt.Sprintf("interests: %s", strings.Join(matchedInterests.Sorted(), ", ")))
	}
	if len(details) > 0 {
		parts = append(parts, "Overlap on skills/interests: "+strings.Join(details, "; "))
	}

	return strings.Join(parts, "; ")
}
