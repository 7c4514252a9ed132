package engine

import (
	"testing"

	"audit-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func twoSectionTemplate(rules ...models.ConditionRule) *models.Template {
	return &models.Template{
		ID:   "tpl-1",
		Name: "Store Walkthrough",
		Sections: []models.Section{
			{
				SectionID: "availability",
				Title:     "Availability",
				Order:     1,
				Questions: []models.Question{
					{QuestionID: "q1", Text: "Is the product on the shelf?", Type: models.QuestionTypeYesNo, Mandatory: true},
					{QuestionID: "q2", Text: "Why is it unavailable?", Type: models.QuestionTypeSingleChoice, Options: []string{"Out of stock", "Delisted"}},
				},
			},
			{
				SectionID: "pricing",
				Title:     "Pricing",
				Order:     2,
				Questions: []models.Question{
					{QuestionID: "q3", Text: "What is the selling price?", Type: models.QuestionTypeNumericInput},
					{QuestionID: "q4", Text: "Is the price tag visible?", Type: models.QuestionTypeYesNo},
				},
			},
		},
		ConditionalLogic: rules,
	}
}

func TestComputeVisible(t *testing.T) {
	t.Run("no rules returns every question", func(t *testing.T) {
		tpl := twoSectionTemplate()
		visible := ComputeVisible(tpl, models.ResponseSet{})

		assert.Len(t, visible, 4)
		for _, id := range []string{"q1", "q2", "q3", "q4"} {
			assert.True(t, visible.Contains(id), "expected %s visible", id)
		}
	})

	t.Run("show rule with true condition keeps target", func(t *testing.T) {
		tpl := twoSectionTemplate(models.ConditionRule{
			RuleID:            "r1",
			SourceQuestionID:  "q1",
			ConditionType:     models.ConditionTypeEquals,
			ConditionValue:    "No",
			Action:            models.RuleActionShow,
			TargetQuestionIDs: []string{"q2"},
		})

		responses := models.ResponseSet{"availability": {"q1": "No"}}
		assert.True(t, ComputeVisible(tpl, responses).Contains("q2"))
	})

	t.Run("show rule with false condition hides target", func(t *testing.T) {
		tpl := twoSectionTemplate(models.ConditionRule{
			RuleID:            "r1",
			SourceQuestionID:  "q1",
			ConditionType:     models.ConditionTypeEquals,
			ConditionValue:    "No",
			Action:            models.RuleActionShow,
			TargetQuestionIDs: []string{"q2"},
		})

		responses := models.ResponseSet{"availability": {"q1": "Yes"}}
		assert.False(t, ComputeVisible(tpl, responses).Contains("q2"))
	})

	t.Run("unanswered source evaluates false", func(t *testing.T) {
		tpl := twoSectionTemplate(models.ConditionRule{
			RuleID:            "r1",
			SourceQuestionID:  "q1",
			ConditionType:     models.ConditionTypeNotEquals,
			ConditionValue:    "anything",
			Action:            models.RuleActionShow,
			TargetQuestionIDs: []string{"q2"},
		})

		for name, responses := range map[string]models.ResponseSet{
			"no responses": {},
			"nil value":    {"availability": {"q1": nil}},
			"empty string": {"availability": {"q1": ""}},
			"empty array":  {"availability": {"q1": []interface{}{}}},
		} {
			t.Run(name, func(t *testing.T) {
				assert.False(t, ComputeVisible(tpl, responses).Contains("q2"))
			})
		}
	})

	t.Run("hide rule is the mirror of show", func(t *testing.T) {
		hide := twoSectionTemplate(models.ConditionRule{
			RuleID:            "r1",
			SourceQuestionID:  "q1",
			ConditionType:     models.ConditionTypeEquals,
			ConditionValue:    "Yes",
			Action:            models.RuleActionHide,
			TargetQuestionIDs: []string{"q2"},
		})
		show := twoSectionTemplate(models.ConditionRule{
			RuleID:            "r1",
			SourceQuestionID:  "q1",
			ConditionType:     models.ConditionTypeEquals,
			ConditionValue:    "Yes",
			Action:            models.RuleActionShow,
			TargetQuestionIDs: []string{"q2"},
		})

		matched := models.ResponseSet{"availability": {"q1": "Yes"}}
		unmatched := models.ResponseSet{"availability": {"q1": "No"}}

		assert.False(t, ComputeVisible(hide, matched).Contains("q2"))
		assert.True(t, ComputeVisible(hide, unmatched).Contains("q2"))
		assert.Equal(t,
			ComputeVisible(hide, matched).Contains("q2"),
			ComputeVisible(show, unmatched).Contains("q2"),
		)
	})

	t.Run("last rule targeting a question wins", func(t *testing.T) {
		tpl := twoSectionTemplate(
			models.ConditionRule{
				RuleID:            "r1",
				SourceQuestionID:  "q1",
				ConditionType:     models.ConditionTypeEquals,
				ConditionValue:    "Yes",
				Action:            models.RuleActionHide,
				TargetQuestionIDs: []string{"q2"},
			},
			models.ConditionRule{
				RuleID:            "r2",
				SourceQuestionID:  "q1",
				ConditionType:     models.ConditionTypeEquals,
				ConditionValue:    "Yes",
				Action:            models.RuleActionShow,
				TargetQuestionIDs: []string{"q2"},
			},
		)

		responses := models.ResponseSet{"availability": {"q1": "Yes"}}
		// r1 hides q2, r2 re-shows it; only r2 counts.
		assert.True(t, ComputeVisible(tpl, responses).Contains("q2"))
	})

	t.Run("numeric comparisons", func(t *testing.T) {
		rule := func(condType models.ConditionType, condValue string) models.ConditionRule {
			return models.ConditionRule{
				RuleID:            "r1",
				SourceQuestionID:  "q3",
				ConditionType:     condType,
				ConditionValue:    condValue,
				Action:            models.RuleActionShow,
				TargetQuestionIDs: []string{"q4"},
			}
		}

		cases := []struct {
			name     string
			rule     models.ConditionRule
			answer   interface{}
			expected bool
		}{
			{"greater_than true", rule(models.ConditionTypeGreaterThan, "5"), "7", true},
			{"greater_than false", rule(models.ConditionTypeGreaterThan, "5"), "3", false},
			{"greater_than equal is false", rule(models.ConditionTypeGreaterThan, "5"), "5", false},
			{"less_than true", rule(models.ConditionTypeLessThan, "5"), "3", true},
			{"less_than json number", rule(models.ConditionTypeLessThan, "5"), float64(3), true},
			{"non-numeric answer is false", rule(models.ConditionTypeGreaterThan, "5"), "abc", false},
			{"non-numeric condition is false", rule(models.ConditionTypeGreaterThan, "low"), "7", false},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				tpl := twoSectionTemplate(tc.rule)
				responses := models.ResponseSet{"pricing": {"q3": tc.answer}}
				assert.Equal(t, tc.expected, ComputeVisible(tpl, responses).Contains("q4"))
			})
		}
	})

	t.Run("contains matches substrings", func(t *testing.T) {
		tpl := twoSectionTemplate(models.ConditionRule{
			RuleID:            "r1",
			SourceQuestionID:  "q1",
			ConditionType:     models.ConditionTypeContains,
			ConditionValue:    "stock",
			Action:            models.RuleActionShow,
			TargetQuestionIDs: []string{"q2"},
		})

		responses := models.ResponseSet{"availability": {"q1": "Out of stock today"}}
		assert.True(t, ComputeVisible(tpl, responses).Contains("q2"))
	})

	t.Run("multiple choice answers compare as joined strings", func(t *testing.T) {
		tpl := twoSectionTemplate(models.ConditionRule{
			RuleID:            "r1",
			SourceQuestionID:  "q2",
			ConditionType:     models.ConditionTypeContains,
			ConditionValue:    "Delisted",
			Action:            models.RuleActionShow,
			TargetQuestionIDs: []string{"q3"},
		})

		responses := models.ResponseSet{"availability": {"q2": []interface{}{"Out of stock", "Delisted"}}}
		assert.True(t, ComputeVisible(tpl, responses).Contains("q3"))
	})

	t.Run("dangling rule references are no-ops", func(t *testing.T) {
		tpl := twoSectionTemplate(models.ConditionRule{
			RuleID:            "r1",
			SourceQuestionID:  "missing",
			ConditionType:     models.ConditionTypeEquals,
			ConditionValue:    "Yes",
			Action:            models.RuleActionHide,
			TargetQuestionIDs: []string{"also-missing", "q2"},
		})

		responses := models.ResponseSet{"availability": {"q1": "Yes"}}
		visible := ComputeVisible(tpl, responses)

		// The unresolved condition is false, so the hide rule re-adds its
		// targets; the unknown id ends up in the set but is harmless.
		assert.True(t, visible.Contains("q2"))
		assert.Len(t, visible, 5)
	})

	t.Run("idempotent for a fixed response set", func(t *testing.T) {
		tpl := twoSectionTemplate(
			models.ConditionRule{
				RuleID:            "r1",
				SourceQuestionID:  "q1",
				ConditionType:     models.ConditionTypeEquals,
				ConditionValue:    "No",
				Action:            models.RuleActionShow,
				TargetQuestionIDs: []string{"q2"},
			},
			models.ConditionRule{
				RuleID:            "r2",
				SourceQuestionID:  "q3",
				ConditionType:     models.ConditionTypeLessThan,
				ConditionValue:    "10",
				Action:            models.RuleActionHide,
				TargetQuestionIDs: []string{"q4"},
			},
		)
		responses := models.ResponseSet{
			"availability": {"q1": "No"},
			"pricing":      {"q3": "4"},
		}

		first := ComputeVisible(tpl, responses)
		second := ComputeVisible(tpl, responses)
		assert.Equal(t, first, second)
	})

	t.Run("does not mutate its inputs", func(t *testing.T) {
		tpl := twoSectionTemplate(models.ConditionRule{
			RuleID:            "r1",
			SourceQuestionID:  "q1",
			ConditionType:     models.ConditionTypeEquals,
			ConditionValue:    "Yes",
			Action:            models.RuleActionHide,
			TargetQuestionIDs: []string{"q2"},
		})
		responses := models.ResponseSet{"availability": {"q1": "Yes"}}

		ComputeVisible(tpl, responses)

		assert.Equal(t, "Yes", responses["availability"]["q1"])
		assert.Len(t, responses, 1)
		assert.Len(t, tpl.ConditionalLogic, 1)
	})
}
