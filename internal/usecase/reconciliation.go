package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"ledger-reconciler/internal/domain"
	"ledger-reconciler/internal/match"
)

// Request describes one reconciliation run.
type Request struct {
	Scope  domain.Scope
	Window domain.Window
	DryRun bool

	// Config overrides the default tuning when non-nil.
	Config *match.Config
}

// ReconciliationUseCase orchestrates a run: configuration resolution, input
// fetch, candidate generation, greedy resolution and, in apply mode, the
// single persistence call.
type ReconciliationUseCase struct {
	transactions TransactionRepository
	titles       TitleRepository
	writer       ReconciliationWriter
	pipeline     *match.Pipeline
	log          zerolog.Logger
}

// NewReconciliationUseCase creates a new instance of the usecase.
func NewReconciliationUseCase(transactions TransactionRepository, titles TitleRepository, writer ReconciliationWriter, log zerolog.Logger) *ReconciliationUseCase {
	return &ReconciliationUseCase{
		transactions: transactions,
		titles:       titles,
		writer:       writer,
		pipeline:     match.NewPipeline(),
		log:          log,
	}
}

// Run executes one reconciliation pass over an in-memory snapshot.
//
// The computation itself is pure and synchronous: runs for different scopes
// may execute in parallel with no coordination. The core does not serialize
// concurrent runs for the same scope; callers must keep at most one apply-mode
// run in flight per (tenant, branch, bank account), or titles could be claimed
// twice across runs.
//
// On a dry run the persistence collaborator is never invoked. In apply mode a
// persistence failure returns the fully resolved result together with a
// *domain.PersistenceError, so the apply can be retried without recomputation.
func (uc *ReconciliationUseCase) Run(ctx context.Context, req Request) (*domain.ReconciliationResult, error) {
	cfg := match.DefaultConfig()
	if req.Config != nil {
		cfg = *req.Config
	}
	if err := req.Scope.Validate(); err != nil {
		return nil, err
	}
	if err := req.Window.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	mode := domain.ModeApply
	if req.DryRun {
		mode = domain.ModeDryRun
	}
	log := uc.log.With().
		Str("run_id", runID).
		Str("tenant_id", req.Scope.TenantID).
		Str("bank_account_id", req.Scope.BankAccountID).
		Str("mode", string(mode)).
		Logger()
	started := time.Now()
	log.Info().
		Time("window_start", req.Window.Start).
		Time("window_end", req.Window.End).
		Msg("reconciliation run started")

	transactions, err := uc.transactions.ListUnreconciled(ctx, req.Scope, req.Window)
	if err != nil {
		log.Error().Err(err).Msg("transaction fetch failed")
		return nil, &domain.UpstreamFetchError{Source: "transactions", Scope: req.Scope, Err: err}
	}
	titles, err := uc.titles.ListOpen(ctx, req.Scope)
	if err != nil {
		log.Error().Err(err).Msg("title fetch failed")
		return nil, &domain.UpstreamFetchError{Source: "titles", Scope: req.Scope, Err: err}
	}

	eligibleTx := filterEligibleTransactions(transactions)
	eligibleTitles := filterEligibleTitles(titles)

	candidates := uc.pipeline.Generate(eligibleTx, eligibleTitles, cfg)
	resolution := match.Resolve(candidates, cfg)

	result := &domain.ReconciliationResult{
		RunID:    runID,
		Scope:    req.Scope,
		Window:   req.Window,
		Mode:     mode,
		Accepted: resolution.Accepted,
		Rejected: resolution.Rejected,
		Counts: domain.Counts{
			MatchedTransactions:   len(resolution.Accepted),
			UnmatchedTransactions: len(eligibleTx) - len(resolution.Accepted),
			UnmatchedTitles:       len(eligibleTitles) - len(resolution.Accepted),
		},
	}

	if !req.DryRun && len(result.Accepted) > 0 {
		if err := uc.writer.MarkReconciled(ctx, req.Scope, result.Pairs()); err != nil {
			result.DurationMs = time.Since(started).Milliseconds()
			log.Error().Err(err).Int("accepted", len(result.Accepted)).Msg("apply failed; resolved matches returned for retry")
			return result, &domain.PersistenceError{RunID: runID, Scope: req.Scope, Err: err}
		}
	}

	result.DurationMs = time.Since(started).Milliseconds()
	log.Info().
		Int("accepted", len(result.Accepted)).
		Int("rejected", len(result.Rejected)).
		Int("unmatched_transactions", result.Counts.UnmatchedTransactions).
		Int("unmatched_titles", result.Counts.UnmatchedTitles).
		Int64("duration_ms", result.DurationMs).
		Msg("reconciliation run completed")
	return result, nil
}

// filterEligibleTransactions keeps only unreconciled transactions. The
// repository should already filter these, but eligibility is a core
// invariant, not a collaborator courtesy.
func filterEligibleTransactions(txs []domain.BankTransaction) []domain.BankTransaction {
	out := make([]domain.BankTransaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Eligible() {
			out = append(out, tx)
		}
	}
	return out
}

func filterEligibleTitles(titles []domain.FinancialTitle) []domain.FinancialTitle {
	out := make([]domain.FinancialTitle, 0, len(titles))
	for _, title := range titles {
		if title.Eligible() {
			out = append(out, title)
		}
	}
	return out
}
