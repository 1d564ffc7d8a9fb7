package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReconciliationStatus defines whether a bank transaction has already been
// reconciled against a title.
type ReconciliationStatus string

const (
	StatusUnreconciled ReconciliationStatus = "UNRECONCILED"
	StatusReconciled   ReconciliationStatus = "RECONCILED"
)

// BankTransaction is an immutable snapshot of one bank-statement line.
// Amounts are signed: negative means money left the account (outbound),
// positive means money arrived (inbound).
type BankTransaction struct {
	ID            string               `json:"id"`
	BankAccountID string               `json:"bank_account_id"`
	Amount        decimal.Decimal      `json:"amount"`
	Date          time.Time            `json:"date"`
	Description   string               `json:"description"`
	Status        ReconciliationStatus `json:"status"`
}

// Eligible reports whether the transaction may participate in a run.
func (t BankTransaction) Eligible() bool {
	return t.Status == StatusUnreconciled
}

// Outbound reports whether money left the account.
func (t BankTransaction) Outbound() bool {
	return t.Amount.IsNegative()
}

// Magnitude returns the unsigned amount, which is what gets compared against
// a title's remaining balance.
func (t BankTransaction) Magnitude() decimal.Decimal {
	return t.Amount.Abs()
}
