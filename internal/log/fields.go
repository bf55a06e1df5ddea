package log

// Common field names for structured logging
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldError      = "error"
	FieldOperation  = "operation"

	FieldEmail       = "email"
	FieldType        = "type"
	FieldAmountPaise = "amount_paise"
	FieldCategory    = "category"
	FieldDivision    = "division"
	FieldCount       = "count"
	FieldPage        = "page"
	FieldCacheKey    = "cache_key"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentGateway = "gateway"
	ComponentAPI     = "api_client"
	ComponentSession = "session"
	ComponentCache   = "cache"
	ComponentExport  = "export"
	ComponentCLI     = "cli"
)

// Operations defines standard operation names
const (
	OpCreate = "create"
	OpUpdate = "update"
	OpDelete = "delete"
	OpList   = "list"
	OpLogin  = "login"
	OpExport = "export"
	OpFetch  = "fetch"
)
