package domain

import "fmt"

// DuplicateRuleError signals that two checkers were registered under the same
// rule identifier. This is a startup misconfiguration and aborts the run.
type DuplicateRuleError struct {
	ID string
}

func (e *DuplicateRuleError) Error() string {
	return fmt.Sprintf("rule %q is already registered", e.ID)
}

// LoadError signals that a dataset snapshot could not be constructed. It is
// fatal to that dataset version only; the engine converts it into a TIV
// failure instead of aborting the batch.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading dataset %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }
