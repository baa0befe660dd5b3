package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldUserID        = "user_id"
	FieldEmail         = "email"
	FieldTransactionID = "transaction_id"
	FieldGoalID        = "goal_id"
	FieldAmount        = "amount"
	FieldCategory      = "category"
	FieldType          = "type"
)

// Components defines standard component names
const (
	ComponentApp       = "app"
	ComponentHTTP      = "http"
	ComponentAuth      = "auth"
	ComponentLedger    = "ledger"
	ComponentGoals     = "goals"
	ComponentReports   = "reports"
	ComponentStorage   = "storage"
	ComponentAMQP      = "amqp"
	ComponentRateLimit = "rate_limit"
	ComponentTrace     = "trace"
)

// Operations defines standard operation names
const (
	OpCreate   = "create"
	OpRead     = "read"
	OpUpdate   = "update"
	OpDelete   = "delete"
	OpList     = "list"
	OpSignup   = "signup"
	OpLogin    = "login"
	OpPublish  = "publish"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
