package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrLocale   = "locale"
	AttrOutcome  = "outcome"
	OutcomeOK    = "ok"
	OutcomeError = "error"
)
