package models

import "time"

type AuditStatus string

const (
	AuditStatusPending    AuditStatus = "Pending"
	AuditStatusInProgress AuditStatus = "InProgress"
	AuditStatusCompleted  AuditStatus = "Completed"
)

// ResponseSet is the two-level answer map: section id to question id to
// answer value. Values are whatever JSON decoding produced: string for
// text/numeric/date/barcode/choice answers, []interface{} or []string for
// multiple choice, float64 for raw numbers.
type ResponseSet map[string]map[string]interface{}

type AuditLocation struct {
	StoreName string `json:"storeName,omitempty" bson:"storeName,omitempty"`
	Address   string `json:"address,omitempty" bson:"address,omitempty"`
}

type Audit struct {
	ID            string             `json:"auditId" bson:"_id,omitempty"`
	TemplateID    string             `json:"templateId" bson:"templateId"`
	AssignedTo    string             `json:"assignedTo" bson:"assignedTo"`
	Location      AuditLocation      `json:"location" bson:"location"`
	Status        AuditStatus        `json:"status" bson:"status"`
	Responses     ResponseSet        `json:"responses" bson:"responses"`
	Score         *float64           `json:"score,omitempty" bson:"score,omitempty"`
	SectionScores map[string]float64 `json:"sectionScores,omitempty" bson:"sectionScores,omitempty"`
	SubmittedAt   *time.Time         `json:"submittedAt,omitempty" bson:"submittedAt,omitempty"`
	TimeModel     `bson:",inline"`
}

// IsCompleted reports whether the audit reached its terminal state. Completed
// audits accept no further mutation.
func (a *Audit) IsCompleted() bool {
	return a.Status == AuditStatusCompleted
}
