package domain

import "fmt"

// The run error taxonomy. Nothing in here is retried by the core: validation
// failures need a corrected request, fetch failures need the collaborator
// fixed, and persistence failures are retried by the caller using the
// resolved result attached to the error. Error strings never leak candidate
// data.

// ValidationError reports malformed configuration or scope. The run never
// starts; no collaborator is touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// UpstreamFetchError reports a failed transaction or title fetch. The run is
// FAILED and no partial result is produced, since an incomplete candidate set
// would silently bias the resolver.
type UpstreamFetchError struct {
	Source string // "transactions" or "titles"
	Scope  Scope
	Err    error
}

func (e *UpstreamFetchError) Error() string {
	return fmt.Sprintf("fetching %s for account %s: %v", e.Source, e.Scope.BankAccountID, e.Err)
}

func (e *UpstreamFetchError) Unwrap() error { return e.Err }

// PersistenceError reports a failed or partially applied apply-mode mutation.
// The resolved (but unapplied) result travels alongside this error so the
// caller can retry the apply step without recomputation.
type PersistenceError struct {
	RunID string
	Scope Scope
	Err   error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("applying matches for run %s on account %s: %v", e.RunID, e.Scope.BankAccountID, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }
