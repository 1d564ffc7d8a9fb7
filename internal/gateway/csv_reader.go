package gateway

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/shopspring/decimal"

	"ledger-reconciler/internal/domain"
)

// CSV gateways back the collaborator ports with statement/ledger export
// files, which is how the CLI feeds the core. Production deployments plug
// their own implementations into the same ports.

// Transaction file columns:
//
//	id,bank_account_id,amount,date,description,status
//
// Title file columns:
//
//	id,direction,amount_due,remaining_balance,due_date,counterparty,status
//
// Dates use YYYY-MM-DD; amounts are exact decimal strings.
const dateLayout = "2006-01-02"

// CSVTransactionRepository reads bank-transaction snapshots from a CSV file.
type CSVTransactionRepository struct {
	path string
}

// NewCSVTransactionRepository creates a repository over one statement file.
func NewCSVTransactionRepository(path string) *CSVTransactionRepository {
	return &CSVTransactionRepository{path: path}
}

// ListUnreconciled returns the file's unreconciled transactions for the
// scoped bank account whose dates fall inside the window.
func (r *CSVTransactionRepository) ListUnreconciled(ctx context.Context, scope domain.Scope, window domain.Window) ([]domain.BankTransaction, error) {
	records, err := readRecords(r.path)
	if err != nil {
		return nil, err
	}

	var transactions []domain.BankTransaction
	for _, record := range records {
		if len(record) < 6 {
			return nil, fmt.Errorf("malformed transaction row in %s: want 6 columns, got %d", r.path, len(record))
		}
		amount, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("could not parse amount '%s': %w", record[2], err)
		}
		date, err := time.Parse(dateLayout, record[3])
		if err != nil {
			return nil, fmt.Errorf("could not parse date '%s': %w", record[3], err)
		}

		tx := domain.BankTransaction{
			ID:            record[0],
			BankAccountID: record[1],
			Amount:        amount,
			Date:          date,
			Description:   record[4],
			Status:        domain.ReconciliationStatus(record[5]),
		}
		if tx.BankAccountID != scope.BankAccountID || !tx.Eligible() || !window.Contains(tx.Date) {
			continue
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// CSVTitleRepository reads financial-title snapshots from a CSV file.
type CSVTitleRepository struct {
	path string
}

// NewCSVTitleRepository creates a repository over one ledger export file.
func NewCSVTitleRepository(path string) *CSVTitleRepository {
	return &CSVTitleRepository{path: path}
}

// ListOpen returns the file's titles that still have a balance to settle.
func (r *CSVTitleRepository) ListOpen(ctx context.Context, scope domain.Scope) ([]domain.FinancialTitle, error) {
	records, err := readRecords(r.path)
	if err != nil {
		return nil, err
	}

	var titles []domain.FinancialTitle
	for _, record := range records {
		if len(record) < 7 {
			return nil, fmt.Errorf("malformed title row in %s: want 7 columns, got %d", r.path, len(record))
		}
		amountDue, err := decimal.NewFromString(record[2])
		if err != nil {
			return nil, fmt.Errorf("could not parse amount_due '%s': %w", record[2], err)
		}
		remaining, err := decimal.NewFromString(record[3])
		if err != nil {
			return nil, fmt.Errorf("could not parse remaining_balance '%s': %w", record[3], err)
		}
		dueDate, err := time.Parse(dateLayout, record[4])
		if err != nil {
			return nil, fmt.Errorf("could not parse due_date '%s': %w", record[4], err)
		}

		title := domain.FinancialTitle{
			ID:               record[0],
			Direction:        domain.TitleDirection(record[1]),
			AmountDue:        amountDue,
			RemainingBalance: remaining,
			DueDate:          dueDate,
			Counterparty:     record[5],
			Status:           domain.TitleStatus(record[6]),
		}
		if !title.Eligible() {
			continue
		}
		titles = append(titles, title)
	}
	return titles, nil
}

// CSVReconciliationLog records applied matches by writing a pairs file. The
// whole accepted set is written in one call; a failure leaves no file behind.
type CSVReconciliationLog struct {
	path string
}

// NewCSVReconciliationLog creates a writer targeting the given output path.
func NewCSVReconciliationLog(path string) *CSVReconciliationLog {
	return &CSVReconciliationLog{path: path}
}

// MarkReconciled writes one row per accepted pair.
func (w *CSVReconciliationLog) MarkReconciled(ctx context.Context, scope domain.Scope, pairs []domain.MatchPair) error {
	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create reconciliation log %s: %w", w.path, err)
	}

	writer := csv.NewWriter(file)
	rows := [][]string{{"transaction_id", "title_id", "bank_account_id"}}
	for _, pair := range pairs {
		rows = append(rows, []string{pair.TransactionID, pair.TitleID, scope.BankAccountID})
	}
	if err := writer.WriteAll(rows); err != nil {
		file.Close()
		os.Remove(w.path)
		return fmt.Errorf("failed to write reconciliation log %s: %w", w.path, err)
	}
	if err := file.Close(); err != nil {
		os.Remove(w.path)
		return fmt.Errorf("failed to close reconciliation log %s: %w", w.path, err)
	}
	return nil
}

// readRecords opens a CSV file, skips the header and returns the data rows.
func readRecords(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var records [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}
		records = append(records, record)
	}
	return records, nil
}
