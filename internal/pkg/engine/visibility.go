package engine

import (
	"strconv"
	"strings"

	"audit-service/internal/app/models"
)

// VisibleSet holds the question ids currently eligible to be shown, answered
// and validated.
type VisibleSet map[string]struct{}

func (s VisibleSet) Contains(questionID string) bool {
	_, ok := s[questionID]
	return ok
}

// ComputeVisible evaluates the template's conditional rules against the given
// responses and returns the set of visible question ids.
//
// Every question starts visible; rules only carve out exceptions. Rules apply
// as a left-to-right fold in declaration order, and each rule unconditionally
// sets membership for its targets (a show rule whose condition is false hides
// its targets, a hide rule whose condition is false shows them). The last
// rule in declaration order targeting a question is therefore authoritative.
//
// The function is pure: it never mutates the template or the responses, and
// it is meant to be re-run in full after every response change.
func ComputeVisible(tpl *models.Template, responses models.ResponseSet) VisibleSet {
	visible := make(VisibleSet)
	for _, section := range tpl.Sections {
		for _, question := range section.Questions {
			visible[question.QuestionID] = struct{}{}
		}
	}

	for _, rule := range tpl.ConditionalLogic {
		matched := evaluateCondition(tpl, responses, rule)

		show := matched
		if rule.Action == models.RuleActionHide {
			show = !matched
		}

		for _, targetID := range rule.TargetQuestionIDs {
			if show {
				visible[targetID] = struct{}{}
			} else {
				delete(visible, targetID)
			}
		}
	}

	return visible
}

// evaluateCondition resolves the rule's source answer and applies its
// condition. An absent or empty source value, a dangling source reference and
// a failed numeric coercion all evaluate to false rather than erroring.
func evaluateCondition(tpl *models.Template, responses models.ResponseSet, rule models.ConditionRule) bool {
	value, ok := sourceValue(tpl, responses, rule.SourceQuestionID)
	if !ok {
		return false
	}

	switch rule.ConditionType {
	case models.ConditionTypeEquals:
		return value == rule.ConditionValue
	case models.ConditionTypeNotEquals:
		return value != rule.ConditionValue
	case models.ConditionTypeContains:
		return strings.Contains(value, rule.ConditionValue)
	case models.ConditionTypeGreaterThan:
		answer, condition, ok := asNumbers(value, rule.ConditionValue)
		return ok && answer > condition
	case models.ConditionTypeLessThan:
		answer, condition, ok := asNumbers(value, rule.ConditionValue)
		return ok && answer < condition
	default:
		return false
	}
}

// sourceValue scans sections in template order and returns the first
// non-empty answer recorded for the question. Template order keeps the
// first-match tie-break reproducible even though ResponseSet is a map.
func sourceValue(tpl *models.Template, responses models.ResponseSet, questionID string) (string, bool) {
	for _, section := range tpl.Sections {
		sectionResponses, ok := responses[section.SectionID]
		if !ok {
			continue
		}
		if value, exists := sectionResponses[questionID]; exists {
			if s, answered := answerString(value); answered {
				return s, true
			}
		}
	}
	return "", false
}

func asNumbers(answer, condition string) (float64, float64, bool) {
	a, err := strconv.ParseFloat(strings.TrimSpace(answer), 64)
	if err != nil {
		return 0, 0, false
	}
	c, err := strconv.ParseFloat(strings.TrimSpace(condition), 64)
	if err != nil {
		return 0, 0, false
	}
	return a, c, true
}
