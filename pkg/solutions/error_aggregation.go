package solutions

import (
	"github.com/solutionops/solutions-check/pkg/logger"
)

var errorAggregationLog = logger.New("solutions:error_aggregation")

// ErrorCollector collects multiple validation errors
type ErrorCollector struct {
	errors   []error
	failFast bool
}

// NewErrorCollector creates a new error collector
// If failFast is true, the collector will stop at the first error
func NewErrorCollector(failFast bool) *ErrorCollector {
	errorAggregationLog.Printf("Creating error collector: fail_fast=%v", failFast)
	return &ErrorCollector{
		errors:   make([]error, 0),
		failFast: failFast,
	}
}

// Add records err. In fail-fast mode it is also recorded and then returned,
// so the caller can stop; otherwise Add returns nil.
func (c *ErrorCollector) Add(err error) error {
	if err == nil {
		return nil
	}

	errorAggregationLog.Printf("Adding error to collector: %v", err)
	c.errors = append(c.errors, err)

	if c.failFast {
		errorAggregationLog.Print("Fail-fast enabled, returning error immediately")
		return err
	}
	return nil
}

// HasErrors returns true if any errors have been collected
func (c *ErrorCollector) HasErrors() bool {
	return len(c.errors) > 0
}

// Count returns the number of errors collected
func (c *ErrorCollector) Count() int {
	return len(c.errors)
}

// Errors returns the collected errors in the order they were added.
func (c *ErrorCollector) Errors() []error {
	return c.errors
}
