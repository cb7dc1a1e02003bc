package pathsearch

import "fmt"

// Error is an ordered severity code returned by Search operations.
//
// The ordering is load-bearing: planner.MultiPathPlanner and
// planner.PathPlanner branch on "err > FallbackDiverted" and
// "err > IterationsReached" rather than switching on specific values.
type Error int

const (
	// Success indicates the path reached a requested destination.
	Success Error = iota
	// FallbackDiverted indicates the path was truncated/diverted to fit
	// within the caller's fallback_cost budget; retryable.
	FallbackDiverted
	// IterationsReached indicates the iteration budget was exhausted
	// before even one hop could be attempted; soft-fail, tolerated by the
	// outer round loop.
	IterationsReached
	// ErrInvalidConfig indicates malformed input (negative duration, an
	// empty path handed to Iterate, etc.); fatal.
	ErrInvalidConfig
	// ErrNoSource indicates SelectSource was given no candidates; fatal.
	ErrNoSource
)

// String renders an Error for logs and test failure messages.
func (e Error) String() string {
	switch e {
	case Success:
		return "success"
	case FallbackDiverted:
		return "fallback_diverted"
	case IterationsReached:
		return "iterations_reached"
	case ErrInvalidConfig:
		return "invalid_config"
	case ErrNoSource:
		return "no_source"
	default:
		return fmt.Sprintf("error(%d)", int(e))
	}
}

// Error implements the error interface so Error values can be returned
// and wrapped like any other Go error, while still being comparable with
// the usual integer operators the severity ordering relies on.
func (e Error) Error() string {
	return "pathsearch: " + e.String()
}
