package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldOperation = "operation"
	FieldURL       = "url"
	FieldStatus    = "status_code"
	FieldMonths    = "months"
	FieldRecords   = "records"
	FieldStepDays  = "step_days"
	FieldPath      = "path"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentFetcher = "fetcher"
	ComponentWindow  = "window"
	ComponentSampler = "sampler"
	ComponentRender  = "render"
)

// Operations defines standard operation names
const (
	OpFetch  = "fetch"
	OpParse  = "parse"
	OpFilter = "filter"
	OpSample = "sample"
	OpRender = "render"
)
