package log

// Field names shared across packages so the same concern always logs
// under the same key.
const (
	FieldComponent   = "component"
	FieldRequestID   = "request_id"
	FieldClientIP    = "client_ip"
	FieldMethod      = "method"
	FieldPath        = "path"
	FieldStatus      = "status"
	FieldDuration    = "duration_ms"
	FieldUserAgent   = "user_agent"
	FieldError       = "error"
	FieldOperation   = "op"
	FieldCategory    = "category"
	FieldTransaction = "transaction_id"
)

// Component names used by the binaries.
const (
	ComponentApp    = "app"
	ComponentWorker = "worker"
)
