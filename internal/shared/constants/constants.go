package constants

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Context keys set by middleware
const (
	ContextKeyOperator = "operator"
)
