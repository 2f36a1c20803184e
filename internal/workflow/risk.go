package workflow

import (
	"math/rand"

	"property-service/internal/model"
)

// RiskScorer assigns an applicant-quality score in [0,100] at submission.
// The score is narrative metadata: assigned once, never recomputed by
// workflow transitions.
type RiskScorer interface {
	Score(details model.ApplicantDetails) int
}

// RandomScorer is the placeholder heuristic carried over from the demo:
// a pseudo-random score in [60,95). It is a stand-in, not an underwriting
// model; swap the RiskScorer to change it.
type RandomScorer struct{}

// Score returns a pseudo-random score in [60,95)
func (RandomScorer) Score(model.ApplicantDetails) int {
	return 60 + rand.Intn(35)
}

var scorer RiskScorer = RandomScorer{}

// SetRiskScorer replaces the placeholder scoring strategy
func SetRiskScorer(s RiskScorer) {
	scorer = s
}
