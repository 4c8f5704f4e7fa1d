package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"tag-ledger/internal/models"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		contains string
	}{
		{"rupees with grouping", "1234.56", "INR", "1,234.56"},
		{"dollars", "10.5", "USD", "10.50"},
		{"rounds to minor unit", "0.129", "EUR", "0.13"},
		{"unknown currency falls back", "12.5", "XYZ", "12.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatAmount(decimal.RequireFromString(tt.amount), tt.currency)
			assert.Contains(t, got, tt.contains)
		})
	}
}

func TestDecodeRows(t *testing.T) {
	rows, err := decodeRows([]byte(` {"Amount": 12.40, "Dr/Cr": "DR"} `))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, json.Number("12.40"), rows[0]["Amount"])

	rows, err = decodeRows([]byte(`[{"Credit": "100"}, {"Debit": "5"}]`))
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = decodeRows([]byte("   "))
	assert.Error(t, err)

	_, err = decodeRows([]byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestClassifyCmd_FromStdin(t *testing.T) {
	var out bytes.Buffer
	cmd := &classifyCmd{
		out: &out,
		in:  strings.NewReader(`[{"Amount": "1,250.00", "Dr/Cr": "Cr."}, {"Withdrawal Amt.": "300"}, {"Narration": "x"}]`),
	}

	status := cmd.Execute(context.Background(), flag.NewFlagSet("classify", flag.ContinueOnError))
	require.Equal(t, subcommands.ExitSuccess, status)

	var got []struct {
		Row            int `json:"row"`
		Classification struct {
			Rule string `json:"rule"`
		} `json:"classification"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 3)
	assert.Equal(t, 1, got[0].Row)
	assert.Equal(t, "indicator", got[0].Classification.Rule)
	assert.Equal(t, "split_columns", got[1].Classification.Rule)
	assert.Equal(t, "none", got[2].Classification.Rule)
}

func TestClassifyCmd_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"Deposit Amt.": "42"}`), 0o600))

	var out bytes.Buffer
	cmd := &classifyCmd{out: &out, file: path}

	status := cmd.Execute(context.Background(), flag.NewFlagSet("classify", flag.ContinueOnError))
	require.Equal(t, subcommands.ExitSuccess, status)
	assert.Contains(t, out.String(), `"split_columns"`)
}

func TestClassifyCmd_BadInput(t *testing.T) {
	var out bytes.Buffer
	cmd := &classifyCmd{out: &out, in: strings.NewReader("not json")}

	status := cmd.Execute(context.Background(), flag.NewFlagSet("classify", flag.ContinueOnError))
	assert.Equal(t, subcommands.ExitFailure, status)
	assert.Empty(t, out.String())
}

func TestRenderSummary(t *testing.T) {
	groceries := models.TagAggregate{
		TagID:            "t1",
		TagName:          "Groceries",
		Credit:           decimal.Zero,
		Debit:            decimal.RequireFromString("450.75"),
		Balance:          decimal.RequireFromString("-450.75"),
		TransactionCount: 3,
		BankBreakdown: map[string]*models.BankBreakdown{
			"Zeta Bank":  {Debit: decimal.RequireFromString("50"), Balance: decimal.RequireFromString("-50"), TransactionCount: 1},
			"Alpha Bank": {Debit: decimal.RequireFromString("400.75"), Balance: decimal.RequireFromString("-400.75"), TransactionCount: 2},
		},
	}
	snapshot := &models.TagsSummarySnapshot{
		Tags:       []models.TagAggregate{groceries},
		ComputedAt: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}

	var out bytes.Buffer
	renderSummary(&out, snapshot, "XYZ", true)

	text := out.String()
	assert.Contains(t, text, "Computed at 2026-03-01 10:00:00 UTC")
	assert.Contains(t, text, "Groceries")
	assert.Contains(t, text, "450.75")
	assert.Less(t, strings.Index(text, "Alpha Bank"), strings.Index(text, "Zeta Bank"))

	out.Reset()
	renderSummary(&out, snapshot, "XYZ", false)
	assert.NotContains(t, out.String(), "Alpha Bank")
}

func TestRenderBanks(t *testing.T) {
	var out bytes.Buffer
	renderBanks(&out, []models.Bank{{ID: "b1", Name: "HDFC Bank", TxTableName: "bank-txn-hdfc-bank"}})

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[1], "bank-txn-hdfc-bank")
}

func TestRecomputeCmd_RequiresUser(t *testing.T) {
	cmd := &recomputeCmd{out: &bytes.Buffer{}}
	status := cmd.Execute(context.Background(), flag.NewFlagSet("recompute", flag.ContinueOnError))
	assert.Equal(t, subcommands.ExitUsageError, status)
}
