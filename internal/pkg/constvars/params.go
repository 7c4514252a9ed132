package constvars

const (
	URLParamTemplateID = "templateID"
	URLParamAuditID    = "auditID"

	QueryParamCategory   = "category"
	QueryParamPublished  = "published"
	QueryParamStatus     = "status"
	QueryParamAssignedTo = "assigned_to"
)

type contextKey string

const (
	CONTEXT_SESSION_DATA_KEY contextKey = "session_data"
)
