package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Template messages
	CreateTemplateSuccessMessage  = "template created successfully"
	UpdateTemplateSuccessMessage  = "template updated successfully"
	FindTemplateSuccessMessage    = "template fetched successfully"
	ListTemplateSuccessMessage    = "templates fetched successfully"
	DeleteTemplateSuccessMessage  = "template deleted successfully"
	PublishTemplateSuccessMessage = "template published successfully"
	SampleTemplateSuccessMessage  = "sample template fetched successfully"
	VisibilitySuccessMessage      = "visibility computed successfully"

	// Audit messages
	CreateAuditSuccessMessage = "audit created successfully"
	FindAuditSuccessMessage   = "audit fetched successfully"
	ListAuditSuccessMessage   = "audits fetched successfully"
	UpdateAuditSuccessMessage = "audit updated successfully"
	SubmitAuditSuccessMessage = "audit submitted successfully"
	DeleteAuditSuccessMessage = "audit deleted successfully"

	// Auth messages
	RegisterSuccess = "user registered successfully"
	LoginSuccess    = "successfully login"
	LogoutSuccess   = "successfully logout"
)
