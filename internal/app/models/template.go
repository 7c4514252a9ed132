package models

// QuestionType is the closed set of question kinds a template may declare.
// Rendering, coercion and scoring all branch on this tag, never on free-form
// strings coming from storage.
type QuestionType string

const (
	QuestionTypeTextInput      QuestionType = "text_input"
	QuestionTypeNumericInput   QuestionType = "numeric_input"
	QuestionTypeSingleChoice   QuestionType = "single_choice"
	QuestionTypeMultipleChoice QuestionType = "multiple_choice"
	QuestionTypeDropdown       QuestionType = "dropdown"
	QuestionTypeDateTime       QuestionType = "date_time"
	QuestionTypeFileUpload     QuestionType = "file_upload"
	QuestionTypeBarcodeScanner QuestionType = "barcode_scanner"
	QuestionTypeYesNo          QuestionType = "yes_no"
	QuestionTypeRatingScale    QuestionType = "rating_scale"
	QuestionTypeImageUpload    QuestionType = "image_upload"
)

// IsChoice reports whether answers to this type come from a fixed option list.
func (t QuestionType) IsChoice() bool {
	switch t {
	case QuestionTypeSingleChoice, QuestionTypeMultipleChoice, QuestionTypeDropdown:
		return true
	}
	return false
}

// IsValid reports whether t is one of the declared question types.
func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeTextInput, QuestionTypeNumericInput, QuestionTypeSingleChoice,
		QuestionTypeMultipleChoice, QuestionTypeDropdown, QuestionTypeDateTime,
		QuestionTypeFileUpload, QuestionTypeBarcodeScanner, QuestionTypeYesNo,
		QuestionTypeRatingScale, QuestionTypeImageUpload:
		return true
	}
	return false
}

type ConditionType string

const (
	ConditionTypeEquals      ConditionType = "equals"
	ConditionTypeNotEquals   ConditionType = "not_equals"
	ConditionTypeContains    ConditionType = "contains"
	ConditionTypeGreaterThan ConditionType = "greater_than"
	ConditionTypeLessThan    ConditionType = "less_than"
)

func (t ConditionType) IsValid() bool {
	switch t {
	case ConditionTypeEquals, ConditionTypeNotEquals, ConditionTypeContains,
		ConditionTypeGreaterThan, ConditionTypeLessThan:
		return true
	}
	return false
}

type RuleAction string

const (
	RuleActionShow RuleAction = "show"
	RuleActionHide RuleAction = "hide"
)

func (a RuleAction) IsValid() bool {
	return a == RuleActionShow || a == RuleActionHide
}

type Template struct {
	ID               string          `json:"templateId" bson:"_id,omitempty"`
	Name             string          `json:"name" bson:"name"`
	Description      string          `json:"description" bson:"description"`
	Category         string          `json:"category" bson:"category"`
	IsPublished      bool            `json:"isPublished" bson:"isPublished"`
	CreatedBy        string          `json:"createdBy" bson:"createdBy"`
	Sections         []Section       `json:"sections" bson:"sections"`
	ConditionalLogic []ConditionRule `json:"conditionalLogic" bson:"conditionalLogic"`
	ScoringRules     *ScoringRules   `json:"scoringRules,omitempty" bson:"scoringRules,omitempty"`
	TimeModel        `bson:",inline"`
}

type Section struct {
	SectionID   string     `json:"sectionId" bson:"sectionId"`
	Title       string     `json:"title" bson:"title"`
	Description string     `json:"description,omitempty" bson:"description,omitempty"`
	Order       int        `json:"order" bson:"order"`
	Questions   []Question `json:"questions" bson:"questions"`
}

type Question struct {
	QuestionID string              `json:"questionId" bson:"questionId"`
	Text       string              `json:"text" bson:"text"`
	Type       QuestionType        `json:"type" bson:"type"`
	Mandatory  bool                `json:"mandatory" bson:"mandatory"`
	Options    []string            `json:"options,omitempty" bson:"options,omitempty"`
	Validation *QuestionValidation `json:"validation,omitempty" bson:"validation,omitempty"`
}

type QuestionValidation struct {
	Min *float64 `json:"min,omitempty" bson:"min,omitempty"`
	Max *float64 `json:"max,omitempty" bson:"max,omitempty"`
}

// ConditionRule shows or hides its targets based on the current answer to the
// source question. Rules are stored and evaluated in declaration order; the
// last rule targeting a given question is authoritative.
type ConditionRule struct {
	RuleID            string        `json:"ruleId" bson:"ruleId"`
	SourceQuestionID  string        `json:"sourceQuestionId" bson:"sourceQuestionId"`
	ConditionType     ConditionType `json:"conditionType" bson:"conditionType"`
	ConditionValue    string        `json:"conditionValue" bson:"conditionValue"`
	Action            RuleAction    `json:"action" bson:"action"`
	TargetQuestionIDs []string      `json:"targetQuestionIds" bson:"targetQuestionIds"`
}

// ScoringRules carries the section weights used by the scoring engine.
// Threshold and CriticalQuestionIDs are informational for downstream
// consumers (pass/fail banners), not scoring inputs.
type ScoringRules struct {
	Enabled             bool           `json:"enabled" bson:"enabled"`
	Weights             map[string]int `json:"weights" bson:"weights"`
	Threshold           int            `json:"threshold,omitempty" bson:"threshold,omitempty"`
	CriticalQuestionIDs []string       `json:"criticalQuestionIds,omitempty" bson:"criticalQuestionIds,omitempty"`
}

// QuestionByID looks a question up across all sections.
func (t *Template) QuestionByID(questionID string) (*Question, bool) {
	for si := range t.Sections {
		for qi := range t.Sections[si].Questions {
			if t.Sections[si].Questions[qi].QuestionID == questionID {
				return &t.Sections[si].Questions[qi], true
			}
		}
	}
	return nil, false
}
