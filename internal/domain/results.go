package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Scope pins a run to exactly one tenant, branch and bank account. The core
// never guesses scope; the caller always supplies it.
type Scope struct {
	TenantID      string `json:"tenant_id"`
	BranchID      string `json:"branch_id"`
	BankAccountID string `json:"bank_account_id"`
}

// Validate rejects empty scope fields before a run starts.
func (s Scope) Validate() error {
	switch {
	case s.TenantID == "":
		return &ValidationError{Field: "tenant_id", Reason: "must not be empty"}
	case s.BranchID == "":
		return &ValidationError{Field: "branch_id", Reason: "must not be empty"}
	case s.BankAccountID == "":
		return &ValidationError{Field: "bank_account_id", Reason: "must not be empty"}
	}
	return nil
}

// Window bounds the transaction dates considered by a run.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Validate rejects inverted windows.
func (w Window) Validate() error {
	if w.End.Before(w.Start) {
		return &ValidationError{Field: "window", Reason: "end must not precede start"}
	}
	return nil
}

// Contains reports whether t falls inside the window, inclusive on both ends.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// StrategyKind identifies which matching strategy produced a candidate.
type StrategyKind string

const (
	StrategyExact        StrategyKind = "EXACT"
	StrategyFuzzy        StrategyKind = "FUZZY"
	StrategyAmountWindow StrategyKind = "AMOUNT_WINDOW"
)

// MatchCandidate is one scored (transaction, title) pairing. Candidates live
// only for the duration of a single resolution pass and are never persisted.
type MatchCandidate struct {
	TransactionID         string
	TitleID               string
	Strategy              StrategyKind
	Confidence            float64
	AmountDelta           decimal.Decimal
	DateDeltaDays         int
	DescriptionSimilarity *float64 // nil for non-fuzzy strategies

	// TransactionDate is carried so the resolver can order candidates
	// deterministically without looking the transaction up again.
	TransactionDate time.Time
}

// AcceptedMatch is a resolved pairing the caller may apply.
type AcceptedMatch struct {
	TransactionID string       `json:"transaction_id"`
	TitleID       string       `json:"title_id"`
	Strategy      StrategyKind `json:"strategy"`
	Confidence    float64      `json:"confidence"`
}

// RejectReason explains why a candidate was not accepted.
type RejectReason string

const (
	RejectBelowThreshold RejectReason = "BELOW_THRESHOLD"
	RejectAlreadyMatched RejectReason = "ALREADY_MATCHED"
)

// RejectedCandidate is a near-miss kept in the result so operators can review
// what the resolver saw but did not take.
type RejectedCandidate struct {
	TransactionID string       `json:"transaction_id"`
	TitleID       string       `json:"title_id"`
	Strategy      StrategyKind `json:"strategy"`
	Confidence    float64      `json:"confidence"`
	Reason        RejectReason `json:"reason"`
}

// Counts summarizes a run.
type Counts struct {
	MatchedTransactions   int `json:"matched_transactions"`
	UnmatchedTransactions int `json:"unmatched_transactions"`
	UnmatchedTitles       int `json:"unmatched_titles"`
}

// RunMode distinguishes proposals from applied runs.
type RunMode string

const (
	ModeDryRun RunMode = "DRY_RUN"
	ModeApply  RunMode = "APPLY"
)

// MatchPair is the minimal payload handed to the persistence collaborator in
// apply mode.
type MatchPair struct {
	TransactionID string `json:"transaction_id"`
	TitleID       string `json:"title_id"`
}

// ReconciliationResult is the single output of a run. The core constructs it
// and hands it to the caller; persisting it, if wanted, is the caller's job.
type ReconciliationResult struct {
	RunID      string              `json:"run_id"`
	Scope      Scope               `json:"scope"`
	Window     Window              `json:"window"`
	Mode       RunMode             `json:"mode"`
	Accepted   []AcceptedMatch     `json:"accepted"`
	Rejected   []RejectedCandidate `json:"rejected"`
	Counts     Counts              `json:"counts"`
	DurationMs int64               `json:"duration_ms"`
}

// Pairs projects the accepted matches into the writer payload.
func (r *ReconciliationResult) Pairs() []MatchPair {
	pairs := make([]MatchPair, 0, len(r.Accepted))
	for _, m := range r.Accepted {
		pairs = append(pairs, MatchPair{TransactionID: m.TransactionID, TitleID: m.TitleID})
	}
	return pairs
}
