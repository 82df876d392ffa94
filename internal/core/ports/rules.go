package ports

import "go.trai.ch/stagehand/internal/core/domain"

// DependencyRules expands a build step into its immediate prerequisites.
//
//go:generate go run go.uber.org/mock/mockgen -source=rules.go -destination=mocks/mock_rules.go -package=mocks
type DependencyRules interface {
	// Dependencies returns the prerequisites of step in the order they must be resolved.
	// Implementations must be total over the action catalog.
	Dependencies(step domain.Step) ([]domain.Step, error)
}
