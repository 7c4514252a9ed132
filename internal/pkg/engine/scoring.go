package engine

import (
	"math"

	"audit-service/internal/app/models"
)

const pointsPerQuestion = 10.0

// ScoreResult is the weighted score of a finalized response set. Total is
// rounded to two decimals; the per-section breakdown is left unrounded.
type ScoreResult struct {
	Total     float64
	BySection map[string]float64
}

// Score computes the weighted presence-based score for the template's
// responses. It returns nil when the template has no scoring rules or no
// section weights, which callers must treat as "no score", not zero.
//
// Every question carries a flat 10-point ceiling. A question earns its full
// 10 points when it is answered at all; there is no correctness concept.
// Hidden questions still count toward a section's maximum, so skipped
// conditional questions lower the section score.
func Score(tpl *models.Template, responses models.ResponseSet) *ScoreResult {
	if tpl.ScoringRules == nil || len(tpl.ScoringRules.Weights) == 0 {
		return nil
	}

	result := &ScoreResult{BySection: make(map[string]float64, len(tpl.Sections))}
	for _, section := range tpl.Sections {
		sectionResponses := responses[section.SectionID]

		var earned, max float64
		for _, question := range section.Questions {
			max += pointsPerQuestion
			if isAnswered(sectionResponses[question.QuestionID]) {
				earned += pointsPerQuestion
			}
		}

		var sectionScore float64
		if max > 0 {
			weight := tpl.ScoringRules.Weights[section.SectionID]
			sectionScore = earned / max * float64(weight)
		}
		result.BySection[section.SectionID] = sectionScore
		result.Total += sectionScore
	}

	result.Total = round2(result.Total)
	return result
}

// round2 rounds half away from zero to two decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
