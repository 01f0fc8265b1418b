package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldWorkingDir = "working_dir"
	FieldConfig     = "config"

	// Engine fields.
	FieldBehaviour = "behaviour"
	FieldClass     = "class"
	FieldAction    = "action"
	FieldCursor    = "cursor"
	FieldText      = "text"
	FieldDirective = "directive"
	FieldLanguage  = "language"

	// Replay fields.
	FieldJobs      = "jobs"
	FieldScenarios = "scenarios"
	FieldPassed    = "passed"
	FieldFailed    = "failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Behaviour listing fields.
	FieldName        = "name"
	FieldEnabled     = "enabled"
	FieldDescription = "description"
)
