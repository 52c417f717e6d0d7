// Package matching implements the weighted study-partner compatibility scorer.
package matching

// Weights assigns each scoring factor its share of the total compatibility
// score. The five weights are expected to sum to 1.0.
type Weights struct {
	Subjects     float64
	Timezone     float64
	SkillLevel   float64
	Availability float64
	StudyStyle   float64
}

// DefaultWeights returns the production weight profile.
//
// Subject overlap dominates because a shared subject is the strongest
// predictor of a productive session. Timezone is the second practical
// constraint; availability partially overlaps with it and is weighted
// accordingly. Study style is a soft preference, not disqualifying.
func DefaultWeights() Weights {
	return Weights{
		Subjects:     0.35,
		Timezone:     0.25,
		SkillLevel:   0.15,
		Availability: 0.15,
		StudyStyle:   0.10,
	}
}

// Scorer computes compatibility scores using a fixed weight profile.
// The zero value is not usable; construct with NewScorer.
type Scorer struct {
	weights Weights
}

// NewScorer creates a Scorer with the given weight profile.
func NewScorer(w Weights) *Scorer {
	return &Scorer{weights: w}
}

// defaultScorer backs the package-level convenience functions.
var defaultScorer = NewScorer(DefaultWeights())
