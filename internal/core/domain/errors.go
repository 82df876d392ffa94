package domain

import "go.trai.ch/zerr"

var (
	// ErrStepAlreadyPlanned is returned when a step is appended to a plan twice.
	ErrStepAlreadyPlanned = zerr.New("step already planned")

	// ErrMissingDependency is returned when a planned step depends on a step that is not in the plan.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrOrderViolation is returned when a step is planned before one of its dependencies.
	ErrOrderViolation = zerr.New("step planned before its dependency")

	// ErrCycleDetected is returned when the dependency rules produce a cycle.
	ErrCycleDetected = zerr.New("cycle detected")

	// ErrUnhandledSource is returned when a source outside the action catalog reaches the rule set.
	ErrUnhandledSource = zerr.New("no dependency rule for source")

	// ErrDependencyRuleFailed is returned when expanding the dependencies of a step fails.
	ErrDependencyRuleFailed = zerr.New("failed to expand dependencies")

	// ErrUnknownAction is returned in strict mode when a requested action name matches no catalog entry.
	ErrUnknownAction = zerr.New("unknown action")

	// ErrTripleNotConfigured is returned when a request names a host or target absent from the configuration.
	ErrTripleNotConfigured = zerr.New("triple is not configured")

	// ErrInvalidStage is returned when a stage value cannot be used.
	ErrInvalidStage = zerr.New("invalid stage")

	// ErrMissingBuildTriple is returned when the configuration does not name a build triple.
	ErrMissingBuildTriple = zerr.New("missing build triple")

	// ErrUnsupportedConfigVersion is returned when the configuration file version is not supported.
	ErrUnsupportedConfigVersion = zerr.New("unsupported config version")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrUnknownFormat is returned when a plan is rendered in an unsupported format.
	ErrUnknownFormat = zerr.New("unknown output format")

	// ErrRenderFailed is returned when a plan cannot be written out.
	ErrRenderFailed = zerr.New("failed to render plan")
)
