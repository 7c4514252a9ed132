package constvars

// Client-facing messages. These are the only strings that leave the service
// on an error response.
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientInvalidUsernameOrPassword     = "invalid username or password"
	ErrClientEmailAlreadyExists            = "email already used"
	ErrClientUsernameAlreadyExists         = "username already used"
	ErrClientTemplateNotFound              = "template not found"
	ErrClientAuditNotFound                 = "audit not found"
	ErrClientAuditAlreadyCompleted         = "this audit was already submitted"
	ErrClientMandatoryQuestionFormat       = "please answer: %s"
	ErrClientTemplateInvalid               = "the template definition is invalid"
	ErrClientTooManyRequests               = "too many requests, please try again later"
)

// Developer messages, logged but never returned to production clients.
const (
	ErrDevCannotParseJSON   = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON = "cannot convert struct or other data types to JSON"
	ErrDevValidationFailed  = "request validation failed"

	ErrDevServerDeadlineExceeded = "server deadline exceeded when processing the request"

	ErrDevAuthGenerateToken         = "failed to generate JWT token"
	ErrDevAuthSigningMethod         = "unexpected JWT signing method"
	ErrDevAuthTokenInvalid          = "JWT token is invalid or expired"
	ErrDevAuthTokenMissing          = "authorization header is missing"
	ErrDevInvalidCredentials        = "invalid credentials"
	ErrDevFailedToHashPassword      = "failed to hash password"
	ErrDevEmailAlreadyExists        = "email already exists"
	ErrDevUsernameAlreadyExists     = "username already exists"
	ErrDevSessionNotFound           = "session not found or expired"
	ErrDevTooManyRequests           = "client exceeded the login attempt limit and is temporarily blocked"
	ErrDevTemplateNotFound          = "template not found"
	ErrDevAuditNotFound             = "audit not found"
	ErrDevAuditAlreadyCompleted     = "audit is in Completed state and cannot transition"
	ErrDevMandatoryQuestionUnfilled = "mandatory visible question has no answer"

	ErrDevTemplateDuplicateSectionID  = "duplicate section id %q"
	ErrDevTemplateDuplicateQuestionID = "duplicate question id %q"
	ErrDevTemplateUnknownQuestionType = "question %q has unknown type %q"
	ErrDevTemplateMissingOptions      = "choice question %q has no options"
	ErrDevTemplateDanglingSource      = "rule %q references unknown source question %q"
	ErrDevTemplateDanglingTarget      = "rule %q references unknown target question %q"
	ErrDevTemplateSelfTargetingRule   = "rule %q targets its own source question %q"
	ErrDevTemplateUnknownCondition    = "rule %q has unknown condition type %q"
	ErrDevTemplateUnknownAction       = "rule %q has unknown action %q"

	ErrDevMongoDBInsertDocument = "failed to insert document to mongoDB"
	ErrDevMongoDBFindDocument   = "failed to find document in mongoDB"
	ErrDevMongoDBUpdateDocument = "failed to update document in mongoDB"
	ErrDevMongoDBDeleteDocument = "failed to delete document in mongoDB"
	ErrDevMongoDBInvalidID      = "the provided id is not a valid ObjectID"

	ErrDevRedisSet       = "failed to set value to redis"
	ErrDevRedisGetNoData = "failed to get value from redis for key %s"
	ErrDevRedisDelete    = "failed to delete value from redis"

	ErrDevEventPublish = "failed to publish event to message broker"
)
