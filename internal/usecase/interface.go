package usecase

import (
	"context"

	"ledger-reconciler/internal/domain"
)

// The usecase layer depends on these collaborator ports, never on concrete
// implementations. The ledger, statement store and persistence layer live
// behind them.
//
//go:generate mockgen -destination=mocks/mock_collaborators.go -source=interface.go

// TransactionRepository fetches the unreconciled bank transactions for one
// scope inside a bounded date window.
type TransactionRepository interface {
	ListUnreconciled(ctx context.Context, scope domain.Scope, window domain.Window) ([]domain.BankTransaction, error)
}

// TitleRepository fetches the open financial titles for one scope.
type TitleRepository interface {
	ListOpen(ctx context.Context, scope domain.Scope) ([]domain.FinancialTitle, error)
}

// ReconciliationWriter applies an accepted-match set. Implementers are
// expected to mark all pairs reconciled as one atomic unit; the core calls
// this at most once per run and never on a dry run.
type ReconciliationWriter interface {
	MarkReconciled(ctx context.Context, scope domain.Scope, pairs []domain.MatchPair) error
}
