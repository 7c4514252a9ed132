package utils

import (
	"audit-service/internal/app/models"
	"audit-service/internal/pkg/dto/requests"

	"github.com/google/uuid"
)

// MapCreateTemplateRequestToModel builds the template model from the request
// DTO, generating ids for sections, questions and rules the author left
// blank.
func MapCreateTemplateRequestToModel(request *requests.CreateTemplate, createdBy string) *models.Template {
	tpl := &models.Template{
		Name:        request.Name,
		Description: request.Description,
		Category:    request.Category,
		CreatedBy:   createdBy,
	}

	tpl.Sections = make([]models.Section, 0, len(request.Sections))
	for i, section := range request.Sections {
		sectionModel := models.Section{
			SectionID:   orGeneratedID(section.SectionID, "s"),
			Title:       section.Title,
			Description: section.Description,
			Order:       section.Order,
		}
		if sectionModel.Order == 0 {
			sectionModel.Order = i + 1
		}

		sectionModel.Questions = make([]models.Question, 0, len(section.Questions))
		for _, question := range section.Questions {
			questionModel := models.Question{
				QuestionID: orGeneratedID(question.QuestionID, "q"),
				Text:       question.Text,
				Type:       models.QuestionType(question.Type),
				Mandatory:  question.Mandatory,
				Options:    question.Options,
			}
			if question.Validation != nil {
				questionModel.Validation = &models.QuestionValidation{
					Min: question.Validation.Min,
					Max: question.Validation.Max,
				}
			}
			sectionModel.Questions = append(sectionModel.Questions, questionModel)
		}
		tpl.Sections = append(tpl.Sections, sectionModel)
	}

	tpl.ConditionalLogic = make([]models.ConditionRule, 0, len(request.ConditionalLogic))
	for _, rule := range request.ConditionalLogic {
		tpl.ConditionalLogic = append(tpl.ConditionalLogic, models.ConditionRule{
			RuleID:            orGeneratedID(rule.RuleID, "r"),
			SourceQuestionID:  rule.SourceQuestionID,
			ConditionType:     models.ConditionType(rule.ConditionType),
			ConditionValue:    rule.ConditionValue,
			Action:            models.RuleAction(rule.Action),
			TargetQuestionIDs: rule.TargetQuestionIDs,
		})
	}

	if request.ScoringRules != nil {
		tpl.ScoringRules = &models.ScoringRules{
			Enabled:             request.ScoringRules.Enabled,
			Weights:             request.ScoringRules.Weights,
			Threshold:           request.ScoringRules.Threshold,
			CriticalQuestionIDs: request.ScoringRules.CriticalQuestionIDs,
		}
	}

	return tpl
}

func orGeneratedID(id, prefix string) string {
	if id != "" {
		return id
	}
	return prefix + "-" + uuid.NewString()
}
