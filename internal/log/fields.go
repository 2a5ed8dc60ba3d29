package log

// Common field names for structured logging.
const (
	FieldComponent = "component"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration"
	FieldClientIP  = "client_ip"
	FieldError     = "error"
)
