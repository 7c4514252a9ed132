package requests

type CreateAudit struct {
	TemplateID string        `json:"templateId" validate:"required"`
	AssignedTo string        `json:"assignedTo"`
	Location   AuditLocation `json:"location"`
}

type AuditLocation struct {
	StoreName string `json:"storeName"`
	Address   string `json:"address"`
}

type UpdateAudit struct {
	AuditID   string                            `json:"-"`
	Responses map[string]map[string]interface{} `json:"responses"`
	Location  *AuditLocation                    `json:"location,omitempty"`
}

type SubmitAudit struct {
	AuditID   string                            `json:"-"`
	Responses map[string]map[string]interface{} `json:"responses"`
}

type ListAudits struct {
	Status     string
	AssignedTo string
}
