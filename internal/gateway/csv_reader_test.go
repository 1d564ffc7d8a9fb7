package gateway

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledger-reconciler/internal/domain"
)

func writeCSV(t *testing.T, rows [][]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	writer := csv.NewWriter(file)
	require.NoError(t, writer.WriteAll(rows))
	return path
}

var testScope = domain.Scope{TenantID: "T-1", BranchID: "B-1", BankAccountID: "ACC-1"}

func marchWindow() domain.Window {
	return domain.Window{
		Start: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
}

func TestCSVTransactionRepository_ListUnreconciled(t *testing.T) {
	header := []string{"id", "bank_account_id", "amount", "date", "description", "status"}

	tests := []struct {
		name    string
		rows    [][]string
		wantIDs []string
		wantErr bool
	}{
		{
			name: "valid transactions within scope and window",
			rows: [][]string{
				header,
				{"TX-1", "ACC-1", "-1500.00", "2025-03-10", "rent march", "UNRECONCILED"},
				{"TX-2", "ACC-1", "998.50", "2025-03-12", "ACME Corp payment", "UNRECONCILED"},
			},
			wantIDs: []string{"TX-1", "TX-2"},
		},
		{
			name: "other accounts, reconciled rows and out-of-window rows are skipped",
			rows: [][]string{
				header,
				{"TX-1", "ACC-1", "100.00", "2025-03-10", "keep", "UNRECONCILED"},
				{"TX-2", "ACC-2", "100.00", "2025-03-10", "other account", "UNRECONCILED"},
				{"TX-3", "ACC-1", "100.00", "2025-03-10", "done already", "RECONCILED"},
				{"TX-4", "ACC-1", "100.00", "2025-04-02", "next month", "UNRECONCILED"},
			},
			wantIDs: []string{"TX-1"},
		},
		{
			name:    "header only yields nothing",
			rows:    [][]string{header},
			wantIDs: nil,
		},
		{
			name: "invalid amount",
			rows: [][]string{
				header,
				{"TX-1", "ACC-1", "not-a-number", "2025-03-10", "x", "UNRECONCILED"},
			},
			wantErr: true,
		},
		{
			name: "invalid date",
			rows: [][]string{
				header,
				{"TX-1", "ACC-1", "100.00", "10/03/2025", "x", "UNRECONCILED"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := NewCSVTransactionRepository(writeCSV(t, tt.rows))
			got, err := repo.ListUnreconciled(context.Background(), testScope, marchWindow())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			var ids []string
			for _, tx := range got {
				ids = append(ids, tx.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestCSVTransactionRepository_ParsesExactAmounts(t *testing.T) {
	repo := NewCSVTransactionRepository(writeCSV(t, [][]string{
		{"id", "bank_account_id", "amount", "date", "description", "status"},
		{"TX-1", "ACC-1", "-0.10", "2025-03-10", "tiny", "UNRECONCILED"},
	}))

	got, err := repo.ListUnreconciled(context.Background(), testScope, marchWindow())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(decimal.RequireFromString("-0.10")))
	assert.True(t, got[0].Outbound())
}

func TestCSVTitleRepository_ListOpen(t *testing.T) {
	header := []string{"id", "direction", "amount_due", "remaining_balance", "due_date", "counterparty", "status"}

	repo := NewCSVTitleRepository(writeCSV(t, [][]string{
		header,
		{"TI-1", "RECEIVABLE", "1000.00", "1000.00", "2025-03-10", "ACME Corp", "OPEN"},
		{"TI-2", "PAYABLE", "800.00", "300.00", "2025-03-15", "Landlord LLC", "PARTIALLY_SETTLED"},
		{"TI-3", "RECEIVABLE", "500.00", "0.00", "2025-03-20", "Settled Inc", "PARTIALLY_SETTLED"},
		{"TI-4", "RECEIVABLE", "500.00", "500.00", "2025-03-20", "Gone GmbH", "CANCELLED"},
	}))

	got, err := repo.ListOpen(context.Background(), testScope)
	require.NoError(t, err)

	// Only titles with a remaining balance in an open state survive.
	require.Len(t, got, 2)
	assert.Equal(t, "TI-1", got[0].ID)
	assert.Equal(t, domain.DirectionReceivable, got[0].Direction)
	assert.Equal(t, "TI-2", got[1].ID)
	assert.True(t, got[1].RemainingBalance.Equal(decimal.RequireFromString("300.00")))
}

func TestCSVTitleRepository_MalformedRow(t *testing.T) {
	repo := NewCSVTitleRepository(writeCSV(t, [][]string{
		{"id", "direction", "amount_due", "remaining_balance", "due_date", "counterparty", "status"},
		{"TI-1", "RECEIVABLE", "oops", "1000.00", "2025-03-10", "ACME Corp", "OPEN"},
	}))

	_, err := repo.ListOpen(context.Background(), testScope)
	assert.Error(t, err)
}

func TestCSVReconciliationLog_MarkReconciled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pairs.csv")
	log := NewCSVReconciliationLog(path)

	pairs := []domain.MatchPair{
		{TransactionID: "TX-1", TitleID: "TI-1"},
		{TransactionID: "TX-2", TitleID: "TI-2"},
	}
	require.NoError(t, log.MarkReconciled(context.Background(), testScope, pairs))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"transaction_id", "title_id", "bank_account_id"},
		{"TX-1", "TI-1", "ACC-1"},
		{"TX-2", "TI-2", "ACC-1"},
	}, rows)
}
