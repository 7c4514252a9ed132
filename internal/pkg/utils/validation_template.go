package utils

import (
	"fmt"

	"audit-service/internal/app/models"
	"audit-service/internal/pkg/constvars"
	"audit-service/internal/pkg/exceptions"
)

// ValidateTemplateDefinition gates a template before it reaches storage or
// the evaluation engine. Rules reference question ids globally, so question
// ids must be unique across the whole template, every rule reference must
// resolve, and a rule may not target its own source. The engine itself still
// tolerates dangling references at evaluation time; this check keeps them out
// of authored templates.
func ValidateTemplateDefinition(tpl *models.Template) error {
	sectionIDs := make(map[string]struct{}, len(tpl.Sections))
	questionIDs := make(map[string]struct{})

	for _, section := range tpl.Sections {
		if _, exists := sectionIDs[section.SectionID]; exists {
			return exceptions.ErrTemplateDefinition(fmt.Sprintf(constvars.ErrDevTemplateDuplicateSectionID, section.SectionID))
		}
		sectionIDs[section.SectionID] = struct{}{}

		for _, question := range section.Questions {
			if _, exists := questionIDs[question.QuestionID]; exists {
				return exceptions.ErrTemplateDefinition(fmt.Sprintf(constvars.ErrDevTemplateDuplicateQuestionID, question.QuestionID))
			}
			questionIDs[question.QuestionID] = struct{}{}

			if !question.Type.IsValid() {
				return exceptions.ErrTemplateDefinition(fmt.Sprintf(constvars.ErrDevTemplateUnknownQuestionType, question.QuestionID, question.Type))
			}
			if question.Type.IsChoice() && len(question.Options) == 0 {
				return exceptions.ErrTemplateDefinition(fmt.Sprintf(constvars.ErrDevTemplateMissingOptions, question.QuestionID))
			}
		}
	}

	for _, rule := range tpl.ConditionalLogic {
		if !rule.ConditionType.IsValid() {
			return exceptions.ErrTemplateDefinition(fmt.Sprintf(constvars.ErrDevTemplateUnknownCondition, rule.RuleID, rule.ConditionType))
		}
		if !rule.Action.IsValid() {
			return exceptions.ErrTemplateDefinition(fmt.Sprintf(constvars.ErrDevTemplateUnknownAction, rule.RuleID, rule.Action))
		}
		if _, exists := questionIDs[rule.SourceQuestionID]; !exists {
			return exceptions.ErrTemplateDefinition(fmt.Sprintf(constvars.ErrDevTemplateDanglingSource, rule.RuleID, rule.SourceQuestionID))
		}
		for _, targetID := range rule.TargetQuestionIDs {
			if _, exists := questionIDs[targetID]; !exists {
				return exceptions.ErrTemplateDefinition(fmt.Sprintf(constvars.ErrDevTemplateDanglingTarget, rule.RuleID, targetID))
			}
			if targetID == rule.SourceQuestionID {
				return exceptions.ErrTemplateDefinition(fmt.Sprintf(constvars.ErrDevTemplateSelfTargetingRule, rule.RuleID, targetID))
			}
		}
	}

	return nil
}
