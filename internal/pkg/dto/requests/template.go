package requests

type CreateTemplate struct {
	Name             string                `json:"name" validate:"required"`
	Description      string                `json:"description"`
	Category         string                `json:"category"`
	Sections         []TemplateSection     `json:"sections" validate:"dive"`
	ConditionalLogic []TemplateRule        `json:"conditionalLogic" validate:"dive"`
	ScoringRules     *TemplateScoringRules `json:"scoringRules,omitempty"`
}

type UpdateTemplate struct {
	TemplateID string `json:"-"`
	CreateTemplate
}

type TemplateSection struct {
	SectionID   string             `json:"sectionId"`
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description"`
	Order       int                `json:"order"`
	Questions   []TemplateQuestion `json:"questions" validate:"dive"`
}

type TemplateQuestion struct {
	QuestionID string              `json:"questionId"`
	Text       string              `json:"text" validate:"required"`
	Type       string              `json:"type" validate:"required,question_type"`
	Mandatory  bool                `json:"mandatory"`
	Options    []string            `json:"options,omitempty"`
	Validation *QuestionValidation `json:"validation,omitempty"`
}

type QuestionValidation struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

type TemplateRule struct {
	RuleID            string   `json:"ruleId"`
	SourceQuestionID  string   `json:"sourceQuestionId" validate:"required"`
	ConditionType     string   `json:"conditionType" validate:"required,condition_type"`
	ConditionValue    string   `json:"conditionValue"`
	Action            string   `json:"action" validate:"required,rule_action"`
	TargetQuestionIDs []string `json:"targetQuestionIds" validate:"required,min=1"`
}

type TemplateScoringRules struct {
	Enabled             bool           `json:"enabled"`
	Weights             map[string]int `json:"weights"`
	Threshold           int            `json:"threshold,omitempty"`
	CriticalQuestionIDs []string       `json:"criticalQuestionIds,omitempty"`
}

type ListTemplates struct {
	Category  string
	Published *bool
}

type ComputeVisibility struct {
	TemplateID string                            `json:"-"`
	Responses  map[string]map[string]interface{} `json:"responses"`
}
