package arbor

import "fmt"

// ConfigurationError reports a parameter set that cannot produce a tree.
// It is returned before any geometry is built.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("arbor: invalid %s: %s", e.Field, e.Reason)
}

// GeometryError reports a numerical degeneracy hit while growing a branch.
// Ring is the index of the section being advanced when it happened.
type GeometryError struct {
	BranchID string
	Ring     int
	Reason   string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("arbor: branch %s ring %d: %s", e.BranchID, e.Ring, e.Reason)
}

func configErrorf(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
