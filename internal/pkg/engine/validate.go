package engine

import "audit-service/internal/app/models"

// ValidationResult reports the outcome of mandatory validation. On failure it
// carries the text of the first unanswered mandatory question, in declared
// section-then-question order.
type ValidationResult struct {
	Valid          bool
	FailedQuestion string
}

// Validate checks that every visible mandatory question has a non-empty
// answer. Questions outside the visible set are never inspected. Validation
// short-circuits at the first failure so error messages are deterministic.
func Validate(tpl *models.Template, responses models.ResponseSet, visible VisibleSet) ValidationResult {
	for _, section := range tpl.Sections {
		for _, question := range section.Questions {
			if !question.Mandatory {
				continue
			}
			if !visible.Contains(question.QuestionID) {
				continue
			}
			if !isAnswered(responses[section.SectionID][question.QuestionID]) {
				return ValidationResult{Valid: false, FailedQuestion: question.Text}
			}
		}
	}
	return ValidationResult{Valid: true}
}
