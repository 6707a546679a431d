package migrate

import "fmt"

// ScanError indicates the legacy tree could not be scanned at all.
// It aborts a migration before any write.
type ScanError struct {
	Path   string
	Reason string
	Err    error
}

func (e *ScanError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("scan %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("scan %s: %s", e.Path, e.Reason)
}

func (e *ScanError) Unwrap() error { return e.Err }

// PlanningError indicates the inventory could not be mapped to a valid
// plan. It aborts a migration before any write.
type PlanningError struct {
	Destination string
	Units       []string
	Reason      string
}

func (e *PlanningError) Error() string {
	if e.Destination != "" {
		return fmt.Sprintf("planning: %s: destination %q claimed by %v", e.Reason, e.Destination, e.Units)
	}
	return fmt.Sprintf("planning: %s: %v", e.Reason, e.Units)
}

// WriteError indicates a plan entry could not be written. Writes made
// before the failure are kept and reported, not rolled back.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }
