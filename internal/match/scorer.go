package match

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/internmatch/internmatch/internal/catalog"
)

// Weights configures the multi-factor scorer. The four factor weights
// must sum to 1.0 so the weighted score stays in [0, 1] before the
// delivery bonus; the final score is capped at 1.0 regardless.
type Weights struct {
	Skills      float64
	Interests   float64
	Education   float64
	Location    float64
	RemoteBonus float64
}

// DefaultWeights returns the standard factor weighting: skills dominate,
// followed by interests, education and location.
func DefaultWeights() Weights {
	return Weights{
		Skills:      0.40,
		Interests:   0.25,
		Education:   0.20,
		Location:    0.15,
		RemoteBonus: 0.05,
	}
}

// Validate checks that the factor weights form a proper convex
// combination and the bonus is non-negative.
func (w Weights) Validate() error {
	var errs []error
	for name, v := range map[string]float64{
		"skills":    w.Skills,
		"interests": w.Interests,
		"education": w.Education,
		"location":  w.Location,
	} {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("weight %s must be in [0, 1], got %v", name, v))
		}
	}
	if sum := w.Skills + w.Interests + w.Education + w.Location; math.Abs(sum-1.0) > 1e-9 {
		errs = append(errs, fmt.Errorf("factor weights must sum to 1.0, got %v", sum))
	}
	if w.RemoteBonus < 0 {
		errs = append(errs, fmt.Errorf("remote bonus must be non-negative, got %v", w.RemoteBonus))
	}
	return errors.Join(errs...)
}

// Scorer computes a weighted multi-factor score for one
// (profile, internship) pair. Scoring is a pure function: no I/O, no
// shared mutable state, safe for concurrent use.
type Scorer struct {
	weights Weights
}

// NewScorer creates a scorer with the given weights.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// Score evaluates an internship against a profile. Missing or malformed
// fields degrade the corresponding factor to zero, never an error.
// Reasons are appended in a fixed factor order so explanations are
// reproducible bit-for-bit.
func (s *Scorer) Score(p Profile, item catalog.Internship) Recommendation {
	var reasons []string

	profileSkills := NewTokenSet(p.Skills...)
	itemSkills := NewTokenSet(item.Skills...)
	skillScore := overlapFraction(profileSkills, itemSkills)
	if skillScore > 0 {
		matched := profileSkills.Intersect(itemSkills)
		reasons = append(reasons, fmt.Sprintf("Skills match: %s.", strings.Join(matched.Sorted(), ", ")))
	}

	profileInterests := NewTokenSet(p.Interests...)
	itemInterests := NewTokenSet(item.Interests...)
	interestScore := overlapFraction(profileInterests, itemInterests)
	if interestScore > 0 {
		matched := profileInterests.Intersect(itemInterests)
		reasons = append(reasons, fmt.Sprintf("Interests match: %s.", strings.Join(matched.Sorted(), ", ")))
	}

	educationScore := 0.0
	if edu := Normalize(p.Education); edu != "" && NewTokenSet(item.EducationLevels...).Contains(edu) {
		educationScore = 1.0
		reasons = append(reasons, fmt.Sprintf("Education level fits (%s).", strings.TrimSpace(p.Education)))
	}

	locScore := locationScore(p.Location, item.Location)
	switch locScore {
	case 1.0:
		reasons = append(reasons, "Location match for local access.")
	case 0.5:
		reasons = append(reasons, "Near-by region match for travel-friendly placement.")
	}

	score := skillScore*s.weights.Skills +
		interestScore*s.weights.Interests +
		educationScore*s.weights.Education +
		locScore*s.weights.Location

	if mode := Normalize(item.DeliveryMode); mode == "remote" || mode == "hybrid" {
		score += s.weights.RemoteBonus
		reasons = append(reasons, "Hybrid/remote friendly for low-bandwidth access.")
	}

	return Recommendation{
		Internship: item,
		Score:      math.Min(score, 1.0),
		Reasons:    reasons,
	}
}

// overlapFraction is the share of the target's tokens also present in
// the profile's. Zero when either set is empty.
func overlapFraction(profile, target TokenSet) float64 {
	if profile.Len() == 0 || target.Len() == 0 {
		return 0
	}
	return float64(profile.Intersect(target).Len()) / float64(target.Len())
}

// locationScore compares two locations: 1.0 for an exact normalized
// match, 0.5 when the leading place name matches and the combined
// comma-separated regions stay below 4 distinct segments, else 0.
// An unset profile location always scores 0.
func locationScore(profileLoc, itemLoc string) float64 {
	user := Normalize(profileLoc)
	if user == "" {
		return 0
	}
	target := Normalize(itemLoc)
	if user == target {
		return 1.0
	}

	segments := make(map[string]struct{})
	for _, seg := range append(strings.Split(user, ","), strings.Split(target, ",")...) {
		if seg = strings.TrimSpace(seg); seg != "" {
			segments[seg] = struct{}{}
		}
	}

	userFields := strings.Fields(user)
	targetFields := strings.Fields(target)
	if len(userFields) > 0 && len(targetFields) > 0 &&
		userFields[0] == targetFields[0] && len(segments) < 4 {
		return 0.5
	}
	return 0
}
