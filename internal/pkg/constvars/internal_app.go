package constvars

const (
	MongoCollectionTemplates = "templates"
	MongoCollectionAudits    = "audits"
	MongoCollectionUsers     = "users"
)

const (
	RedisKeySessionFormat  = "session:%s"
	RedisKeyTemplateFormat = "template:%s"
)

const (
	EventAuditCompleted = "audit.completed"
)
