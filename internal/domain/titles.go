package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TitleDirection defines whether a title is money we owe (payable) or money
// owed to us (receivable).
type TitleDirection string

const (
	DirectionPayable    TitleDirection = "PAYABLE"
	DirectionReceivable TitleDirection = "RECEIVABLE"
)

// TitleStatus is the lifecycle state of a financial title. The lifecycle
// itself is owned by the ledger; this core only reads it to decide
// eligibility.
type TitleStatus string

const (
	TitleOpen             TitleStatus = "OPEN"
	TitlePartiallySettled TitleStatus = "PARTIALLY_SETTLED"
	TitleSettled          TitleStatus = "SETTLED"
	TitleCancelled        TitleStatus = "CANCELLED"
)

// FinancialTitle is an immutable snapshot of one open obligation
// (payable or receivable) from the ledger.
type FinancialTitle struct {
	ID               string          `json:"id"`
	Direction        TitleDirection  `json:"direction"`
	AmountDue        decimal.Decimal `json:"amount_due"`
	RemainingBalance decimal.Decimal `json:"remaining_balance"`
	DueDate          time.Time       `json:"due_date"`
	Counterparty     string          `json:"counterparty"`
	Status           TitleStatus     `json:"status"`
}

// Eligible reports whether the title may participate in a run: it must still
// be collectible/payable and have a balance left to settle.
func (ft FinancialTitle) Eligible() bool {
	if ft.Status != TitleOpen && ft.Status != TitlePartiallySettled {
		return false
	}
	return ft.RemainingBalance.IsPositive()
}

// MatchesDirection reports whether the transaction's sign is compatible with
// the title: payables settle with outbound money, receivables with inbound.
// A sign mismatch excludes the pair outright, it is never scored.
func (ft FinancialTitle) MatchesDirection(tx BankTransaction) bool {
	switch ft.Direction {
	case DirectionPayable:
		return tx.Amount.IsNegative()
	case DirectionReceivable:
		return tx.Amount.IsPositive()
	}
	return false
}
