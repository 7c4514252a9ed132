package samples

import (
	"context"
	"sync"

	"audit-service/internal/app/contracts"
	"audit-service/internal/app/models"
)

type sampleUsecase struct{}

var (
	sampleUsecaseInstance contracts.SampleUsecase
	onceSampleUsecase     sync.Once
)

func NewSampleUsecase() contracts.SampleUsecase {
	onceSampleUsecase.Do(func() {
		sampleUsecaseInstance = &sampleUsecase{}
	})
	return sampleUsecaseInstance
}

// RetailExecutionTemplate returns a ready-to-customize merchandising audit.
// Callers get a fresh copy each time so they can edit it freely before
// creating their own template from it.
func (uc *sampleUsecase) RetailExecutionTemplate(_ context.Context) (*models.Template, error) {
	tpl := retailExecutionTemplate()
	return tpl, nil
}

func floatPtr(v float64) *float64 { return &v }

func retailExecutionTemplate() *models.Template {
	return &models.Template{
		Name:        "Retail Execution Audit",
		Description: "Comprehensive retail audit for availability, visibility, pricing, and compliance",
		Category:    "Merchandising",
		IsPublished: false,
		Sections: []models.Section{
			{
				SectionID:   "availability",
				Title:       "Product Availability",
				Description: "Check product availability and stock levels",
				Order:       1,
				Questions: []models.Question{
					{
						QuestionID: "q1",
						Text:       "Is our product available on the shelf?",
						Type:       models.QuestionTypeYesNo,
						Mandatory:  true,
					},
					{
						QuestionID: "q2",
						Text:       "Why is the product unavailable?",
						Type:       models.QuestionTypeSingleChoice,
						Options:    []string{"Out of stock", "Not ordered", "Delisted", "Other"},
						Mandatory:  true,
					},
					{
						QuestionID: "q3",
						Text:       "Estimate the stock quantity on display.",
						Type:       models.QuestionTypeNumericInput,
						Mandatory:  true,
						Validation: &models.QuestionValidation{Min: floatPtr(0), Max: floatPtr(1000)},
					},
					{
						QuestionID: "q4",
						Text:       "Did you inform store staff to replenish?",
						Type:       models.QuestionTypeYesNo,
						Mandatory:  true,
					},
				},
			},
			{
				SectionID:   "visibility",
				Title:       "Shelf Visibility & Placement",
				Description: "Evaluate product placement and visibility",
				Order:       2,
				Questions: []models.Question{
					{
						QuestionID: "q5",
						Text:       "Is the product placed at eye level or in a prime location?",
						Type:       models.QuestionTypeSingleChoice,
						Options:    []string{"Eye level", "Mid-shelf", "Bottom shelf", "Top shelf"},
						Mandatory:  true,
					},
					{
						QuestionID: "q6",
						Text:       "Can the product be moved to a better shelf?",
						Type:       models.QuestionTypeYesNo,
						Mandatory:  true,
					},
					{
						QuestionID: "q7",
						Text:       "How many facings does our product have?",
						Type:       models.QuestionTypeNumericInput,
						Mandatory:  true,
						Validation: &models.QuestionValidation{Min: floatPtr(0), Max: floatPtr(50)},
					},
					{
						QuestionID: "q8",
						Text:       "Upload a photo of the product shelf.",
						Type:       models.QuestionTypeImageUpload,
						Mandatory:  true,
					},
				},
			},
			{
				SectionID:   "branding",
				Title:       "Branding & Compliance",
				Description: "Check POSM and branding materials",
				Order:       3,
				Questions: []models.Question{
					{
						QuestionID: "q9",
						Text:       "Is our POSM (posters, wobblers, shelf strips) properly placed and visible?",
						Type:       models.QuestionTypeYesNo,
						Mandatory:  true,
					},
					{
						QuestionID: "q10",
						Text:       "Which POSM materials are missing?",
						Type:       models.QuestionTypeMultipleChoice,
						Options:    []string{"Posters", "Wobblers", "Shelf strips", "Standees", "Danglers"},
						Mandatory:  false,
					},
				},
			},
			{
				SectionID:   "pricing",
				Title:       "Pricing Compliance",
				Description: "Verify pricing accuracy",
				Order:       4,
				Questions: []models.Question{
					{
						QuestionID: "q11",
						Text:       "Is the product being sold at the correct MRP?",
						Type:       models.QuestionTypeSingleChoice,
						Options:    []string{"Yes", "Higher than MRP", "Lower than MRP"},
						Mandatory:  true,
					},
					{
						QuestionID: "q12",
						Text:       "What is the actual selling price?",
						Type:       models.QuestionTypeNumericInput,
						Mandatory:  false,
						Validation: &models.QuestionValidation{Min: floatPtr(0)},
					},
				},
			},
			{
				SectionID:   "competitor",
				Title:       "Competitor Analysis",
				Description: "Track competitor presence",
				Order:       5,
				Questions: []models.Question{
					{
						QuestionID: "q13",
						Text:       "Which competitor products are present next to ours?",
						Type:       models.QuestionTypeMultipleChoice,
						Options:    []string{"Brand A", "Brand B", "Brand C", "Brand D", "None"},
						Mandatory:  true,
					},
				},
			},
			{
				SectionID:   "store_quality",
				Title:       "Store Quality",
				Description: "Assess store conditions",
				Order:       6,
				Questions: []models.Question{
					{
						QuestionID: "q14",
						Text:       "Rate the overall cleanliness of the outlet.",
						Type:       models.QuestionTypeRatingScale,
						Mandatory:  true,
						Validation: &models.QuestionValidation{Min: floatPtr(1), Max: floatPtr(5)},
					},
					{
						QuestionID: "q15",
						Text:       "Was store staff aware of current promotions?",
						Type:       models.QuestionTypeYesNo,
						Mandatory:  true,
					},
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
			{
				RuleID:            "r2",
				SourceQuestionID:  "q1",
				ConditionType:     models.ConditionTypeEquals,
				ConditionValue:    "Yes",
				Action:            models.RuleActionHide,
				TargetQuestionIDs: []string{"q2"},
			},
			{
				RuleID:            "r3",
				SourceQuestionID:  "q3",
				ConditionType:     models.ConditionTypeLessThan,
				ConditionValue:    "5",
				Action:            models.RuleActionShow,
				TargetQuestionIDs: []string{"q4"},
			},
			{
				RuleID:            "r4",
				SourceQuestionID:  "q3",
				ConditionType:     models.ConditionTypeGreaterThan,
				ConditionValue:    "5",
				Action:            models.RuleActionHide,
				TargetQuestionIDs: []string{"q4"},
			},
			{
				RuleID:            "r5",
				SourceQuestionID:  "q5",
				ConditionType:     models.ConditionTypeEquals,
				ConditionValue:    "Bottom shelf",
				Action:            models.RuleActionShow,
				TargetQuestionIDs: []string{"q6"},
			},
			{
				RuleID:            "r6",
				SourceQuestionID:  "q5",
				ConditionType:     models.ConditionTypeNotEquals,
				ConditionValue:    "Bottom shelf",
				Action:            models.RuleActionHide,
				TargetQuestionIDs: []string{"q6"},
			},
			{
				RuleID:            "r7",
				SourceQuestionID:  "q9",
				ConditionType:     models.ConditionTypeEquals,
				ConditionValue:    "No",
				Action:            models.RuleActionShow,
				TargetQuestionIDs: []string{"q10"},
			},
			{
				RuleID:            "r8",
				SourceQuestionID:  "q9",
				ConditionType:     models.ConditionTypeEquals,
				ConditionValue:    "Yes",
				Action:            models.RuleActionHide,
				TargetQuestionIDs: []string{"q10"},
			},
			{
				RuleID:            "r9",
				SourceQuestionID:  "q11",
				ConditionType:     models.ConditionTypeNotEquals,
				ConditionValue:    "Yes",
				Action:            models.RuleActionShow,
				TargetQuestionIDs: []string{"q12"},
			},
			{
				RuleID:            "r10",
				SourceQuestionID:  "q11",
				ConditionType:     models.ConditionTypeEquals,
				ConditionValue:    "Yes",
				Action:            models.RuleActionHide,
				TargetQuestionIDs: []string{"q12"},
			},
		},
		ScoringRules: &models.ScoringRules{
			Enabled: true,
			Weights: map[string]int{
				"availability":  25,
				"visibility":    20,
				"branding":      15,
				"pricing":       15,
				"competitor":    10,
				"store_quality": 15,
			},
			Threshold:           75,
			CriticalQuestionIDs: []string{"q1", "q9", "q11"},
		},
	}
}
