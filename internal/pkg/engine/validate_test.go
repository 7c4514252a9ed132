package engine

import (
	"testing"

	"audit-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tpl := twoSectionTemplate()
	allVisible := ComputeVisible(tpl, models.ResponseSet{})

	t.Run("valid when every visible mandatory question is answered", func(t *testing.T) {
		responses := models.ResponseSet{"availability": {"q1": "Yes"}}
		result := Validate(tpl, responses, allVisible)

		assert.True(t, result.Valid)
		assert.Empty(t, result.FailedQuestion)
	})

	t.Run("fails with the first unanswered mandatory question's text", func(t *testing.T) {
		result := Validate(tpl, models.ResponseSet{}, allVisible)

		assert.False(t, result.Valid)
		assert.Equal(t, "Is the product on the shelf?", result.FailedQuestion)
	})

	t.Run("empty answers fail", func(t *testing.T) {
		for name, answer := range map[string]interface{}{
			"nil":          nil,
			"empty string": "",
			"empty array":  []interface{}{},
		} {
			t.Run(name, func(t *testing.T) {
				responses := models.ResponseSet{"availability": {"q1": answer}}
				assert.False(t, Validate(tpl, responses, allVisible).Valid)
			})
		}
	})

	t.Run("zero counts as answered", func(t *testing.T) {
		tplNumeric := &models.Template{
			Sections: []models.Section{{
				SectionID: "s1",
				Questions: []models.Question{
					{QuestionID: "q1", Text: "How many facings?", Type: models.QuestionTypeNumericInput, Mandatory: true},
				},
			}},
		}
		visible := ComputeVisible(tplNumeric, models.ResponseSet{})

		assert.True(t, Validate(tplNumeric, models.ResponseSet{"s1": {"q1": "0"}}, visible).Valid)
		assert.True(t, Validate(tplNumeric, models.ResponseSet{"s1": {"q1": float64(0)}}, visible).Valid)
	})

	t.Run("hidden mandatory questions are skipped", func(t *testing.T) {
		visible := VisibleSet{"q2": {}, "q3": {}, "q4": {}} // q1 hidden
		result := Validate(tpl, models.ResponseSet{}, visible)

		assert.True(t, result.Valid)
	})

	t.Run("first failure wins in declared order", func(t *testing.T) {
		tplTwoMandatory := twoSectionTemplate()
		tplTwoMandatory.Sections[1].Questions[0].Mandatory = true // q3

		result := Validate(tplTwoMandatory, models.ResponseSet{}, allVisible)

		assert.False(t, result.Valid)
		assert.Equal(t, "Is the product on the shelf?", result.FailedQuestion)

		answered := models.ResponseSet{"availability": {"q1": "Yes"}}
		result = Validate(tplTwoMandatory, answered, allVisible)

		assert.False(t, result.Valid)
		assert.Equal(t, "What is the selling price?", result.FailedQuestion)
	})
}
