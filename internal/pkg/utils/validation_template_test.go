package utils

import (
	"testing"

	"audit-service/internal/app/models"
	"audit-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTemplate() *models.Template {
	return &models.Template{
		Name: "Shelf Check",
		Sections: []models.Section{
			{
				SectionID: "s1",
				Title:     "Shelf",
				Order:     1,
				Questions: []models.Question{
					{QuestionID: "q1", Text: "Product present?", Type: models.QuestionTypeYesNo, Mandatory: true},
					{QuestionID: "q2", Text: "Reason?", Type: models.QuestionTypeSingleChoice, Options: []string{"Out of stock", "Other"}},
				},
			},
			{
				SectionID: "s2",
				Title:     "Pricing",
				Order:     2,
				Questions: []models.Question{
					{QuestionID: "q3", Text: "Price?", Type: models.QuestionTypeNumericInput},
				},
			},
		},
		ConditionalLogic: []models.ConditionRule{
			{
				RuleID:            "r1",
				SourceQuestionID:  "q1",
				ConditionType:     models.ConditionTypeEquals,
				ConditionValue:    "No",
				Action:            models.RuleActionShow,
				TargetQuestionIDs: []string{"q2"},
			},
		},
	}
}

func TestValidateTemplateDefinition(t *testing.T) {
	t.Run("accepts a well-formed template", func(t *testing.T) {
		assert.NoError(t, ValidateTemplateDefinition(validTemplate()))
	})

	cases := []struct {
		name   string
		mutate func(*models.Template)
	}{
		{
			"duplicate question id across sections",
			func(tpl *models.Template) { tpl.Sections[1].Questions[0].QuestionID = "q1" },
		},
		{
			"duplicate section id",
			func(tpl *models.Template) { tpl.Sections[1].SectionID = "s1" },
		},
		{
			"unknown question type",
			func(tpl *models.Template) { tpl.Sections[0].Questions[0].Type = "mystery" },
		},
		{
			"choice question without options",
			func(tpl *models.Template) { tpl.Sections[0].Questions[1].Options = nil },
		},
		{
			"dangling rule source",
			func(tpl *models.Template) { tpl.ConditionalLogic[0].SourceQuestionID = "nope" },
		},
		{
			"dangling rule target",
			func(tpl *models.Template) { tpl.ConditionalLogic[0].TargetQuestionIDs = []string{"nope"} },
		},
		{
			"rule targeting its own source",
			func(tpl *models.Template) { tpl.ConditionalLogic[0].TargetQuestionIDs = []string{"q1"} },
		},
		{
			"unknown condition type",
			func(tpl *models.Template) { tpl.ConditionalLogic[0].ConditionType = "roughly" },
		},
		{
			"unknown rule action",
			func(tpl *models.Template) { tpl.ConditionalLogic[0].Action = "toggle" },
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tpl := validTemplate()
			tc.mutate(tpl)

			err := ValidateTemplateDefinition(tpl)
			require.Error(t, err)

			var customErr *exceptions.CustomError
			require.ErrorAs(t, err, &customErr)
			assert.Equal(t, 400, customErr.StatusCode)
		})
	}
}
