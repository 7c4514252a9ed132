package engine

import (
	"testing"

	"audit-service/internal/app/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scoredTemplate(weights map[string]int) *models.Template {
	tpl := twoSectionTemplate()
	if weights != nil {
		tpl.ScoringRules = &models.ScoringRules{Enabled: true, Weights: weights}
	}
	return tpl
}

func TestScore(t *testing.T) {
	t.Run("nil when scoring rules are absent", func(t *testing.T) {
		tpl := scoredTemplate(nil)
		responses := models.ResponseSet{"availability": {"q1": "Yes"}}

		assert.Nil(t, Score(tpl, responses))
	})

	t.Run("nil when weights are empty", func(t *testing.T) {
		tpl := scoredTemplate(map[string]int{})

		assert.Nil(t, Score(tpl, models.ResponseSet{}))
	})

	t.Run("full credit for answered questions", func(t *testing.T) {
		tpl := scoredTemplate(map[string]int{"availability": 60, "pricing": 40})
		responses := models.ResponseSet{
			"availability": {"q1": "Yes", "q2": "Out of stock"},
			"pricing":      {"q3": "19.99", "q4": "Yes"},
		}

		result := Score(tpl, responses)
		require.NotNil(t, result)
		assert.Equal(t, 100.0, result.Total)
		assert.Equal(t, 60.0, result.BySection["availability"])
		assert.Equal(t, 40.0, result.BySection["pricing"])
	})

	t.Run("partial credit is proportional", func(t *testing.T) {
		tpl := scoredTemplate(map[string]int{"availability": 60, "pricing": 40})
		responses := models.ResponseSet{
			"availability": {"q1": "Yes"}, // 1 of 2 answered
		}

		result := Score(tpl, responses)
		require.NotNil(t, result)
		assert.Equal(t, 30.0, result.Total)
		assert.Equal(t, 30.0, result.BySection["availability"])
		assert.Equal(t, 0.0, result.BySection["pricing"])
	})

	t.Run("sections without a weight contribute zero", func(t *testing.T) {
		tpl := scoredTemplate(map[string]int{"availability": 100})
		responses := models.ResponseSet{
			"availability": {"q1": "Yes", "q2": "Delisted"},
			"pricing":      {"q3": "5", "q4": "Yes"},
		}

		result := Score(tpl, responses)
		require.NotNil(t, result)
		assert.Equal(t, 100.0, result.Total)
		assert.Equal(t, 0.0, result.BySection["pricing"])
	})

	t.Run("empty section scores zero", func(t *testing.T) {
		tpl := scoredTemplate(map[string]int{"empty": 50})
		tpl.Sections = append(tpl.Sections, models.Section{SectionID: "empty", Title: "Empty", Order: 3})

		result := Score(tpl, models.ResponseSet{})
		require.NotNil(t, result)
		assert.Equal(t, 0.0, result.BySection["empty"])
	})

	t.Run("zero answers count, empty arrays do not", func(t *testing.T) {
		tpl := scoredTemplate(map[string]int{"availability": 100, "pricing": 0})
		responses := models.ResponseSet{
			"availability": {
				"q1": "0",
				"q2": []interface{}{},
			},
		}

		result := Score(tpl, responses)
		require.NotNil(t, result)
		assert.Equal(t, 50.0, result.Total)
	})

	t.Run("total is rounded to two decimals", func(t *testing.T) {
		tpl := &models.Template{
			Sections: []models.Section{{
				SectionID: "s1",
				Questions: []models.Question{
					{QuestionID: "q1", Type: models.QuestionTypeYesNo},
					{QuestionID: "q2", Type: models.QuestionTypeYesNo},
					{QuestionID: "q3", Type: models.QuestionTypeYesNo},
				},
			}},
			ScoringRules: &models.ScoringRules{Enabled: true, Weights: map[string]int{"s1": 100}},
		}
		responses := models.ResponseSet{"s1": {"q1": "Yes"}}

		result := Score(tpl, responses)
		require.NotNil(t, result)
		assert.Equal(t, 33.33, result.Total)
	})
}

// The documented end-to-end scenario: one section with weight 100, a
// mandatory yes/no q1 and an optional numeric q2 shown only when q1 is "No".
// A hidden, unanswered q2 still counts toward the section maximum.
func TestVisibilityValidationScoringScenario(t *testing.T) {
	tpl := &models.Template{
		ID:   "tpl-scenario",
		Name: "Single Section",
		Sections: []models.Section{{
			SectionID: "s1",
			Title:     "Checks",
			Order:     1,
			Questions: []models.Question{
				{QuestionID: "q1", Text: "Product present?", Type: models.QuestionTypeYesNo, Mandatory: true},
				{QuestionID: "q2", Text: "How many remain?", Type: models.QuestionTypeNumericInput},
			},
		}},
		ConditionalLogic: []models.ConditionRule{{
			RuleID:            "r1",
			SourceQuestionID:  "q1",
			ConditionType:     models.ConditionTypeEquals,
			ConditionValue:    "No",
			Action:            models.RuleActionShow,
			TargetQuestionIDs: []string{"q2"},
		}},
		ScoringRules: &models.ScoringRules{Enabled: true, Weights: map[string]int{"s1": 100}},
	}

	t.Run("q1 No shows q2 and scores 100", func(t *testing.T) {
		responses := models.ResponseSet{"s1": {"q1": "No", "q2": "3"}}

		visible := ComputeVisible(tpl, responses)
		assert.True(t, visible.Contains("q1"))
		assert.True(t, visible.Contains("q2"))

		assert.True(t, Validate(tpl, responses, visible).Valid)

		result := Score(tpl, responses)
		require.NotNil(t, result)
		assert.Equal(t, 100.0, result.Total)
	})

	t.Run("q1 Yes hides q2 and scores 50", func(t *testing.T) {
		responses := models.ResponseSet{"s1": {"q1": "Yes"}}

		visible := ComputeVisible(tpl, responses)
		assert.True(t, visible.Contains("q1"))
		assert.False(t, visible.Contains("q2"))

		assert.True(t, Validate(tpl, responses, visible).Valid)

		result := Score(tpl, responses)
		require.NotNil(t, result)
		assert.Equal(t, 50.0, result.Total)
	})
}

// Responses that survive a JSON round trip must evaluate identically:
// the persistence boundary serializes ResponseSet as section id to question
// id to answer value.
func TestResponseSetRoundTrip(t *testing.T) {
	tpl := scoredTemplate(map[string]int{"availability": 60, "pricing": 40})
	tpl.ConditionalLogic = []models.ConditionRule{{
		RuleID:            "r1",
		SourceQuestionID:  "q1",
		ConditionType:     models.ConditionTypeEquals,
		ConditionValue:    "No",
		Action:            models.RuleActionShow,
		TargetQuestionIDs: []string{"q2"},
	}}

	responses := models.ResponseSet{
		"availability": {"q1": "No", "q2": []interface{}{"Out of stock", "Delisted"}},
		"pricing":      {"q3": "12.5"},
	}

	raw, err := json.Marshal(responses)
	require.NoError(t, err)

	var decoded models.ResponseSet
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, ComputeVisible(tpl, responses), ComputeVisible(tpl, decoded))

	before, after := Score(tpl, responses), Score(tpl, decoded)
	require.NotNil(t, before)
	require.NotNil(t, after)
	assert.Equal(t, before.Total, after.Total)
	assert.Equal(t, before.BySection, after.BySection)

	visible := ComputeVisible(tpl, decoded)
	assert.Equal(t, Validate(tpl, responses, visible), Validate(tpl, decoded, visible))
}
