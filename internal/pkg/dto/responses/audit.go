package responses

import "audit-service/internal/app/models"

type SubmitAudit struct {
	Audit         *models.Audit      `json:"audit"`
	Score         *float64           `json:"score"`
	SectionScores map[string]float64 `json:"sectionScores,omitempty"`
}

// Visibility is the engine's answer for a response snapshot: the ordered list
// of currently visible question ids and which of those are mandatory.
type Visibility struct {
	VisibleQuestionIDs   []string `json:"visibleQuestionIds"`
	MandatoryQuestionIDs []string `json:"mandatoryQuestionIds"`
}
