package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Identifiers
	FieldEntity = "entity"
	FieldPrefix = "prefix"
	FieldScheme = "scheme"
	FieldCount  = "count"

	// Service
	FieldService = "service"
)
