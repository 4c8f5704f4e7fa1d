package models

import (
	"slices"

	"github.com/shopspring/decimal"
)

// BankBreakdown holds the per-bank share of one tag aggregate.
type BankBreakdown struct {
	Credit           decimal.Decimal `json:"credit"`
	Debit            decimal.Decimal `json:"debit"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
	Accounts         []string        `json:"accounts"`
}

func newBankBreakdown() *BankBreakdown {
	return &BankBreakdown{
		Credit:   decimal.Zero,
		Debit:    decimal.Zero,
		Balance:  decimal.Zero,
		Accounts: []string{},
	}
}

func (b *BankBreakdown) add(m NormalizedMovement, account string) {
	switch m.Direction {
	case DirectionCredit:
		b.Credit = b.Credit.Add(m.AmountAbs)
	case DirectionDebit:
		b.Debit = b.Debit.Add(m.AmountAbs)
	}
	b.Balance = b.Credit.Sub(b.Debit).Round(2)
	b.TransactionCount++
	if account != "" && !slices.Contains(b.Accounts, account) {
		b.Accounts = append(b.Accounts, account)
	}
}

// TagAggregate accumulates every classified movement carrying one tag.
// Balance always equals round(Credit-Debit, 2).
type TagAggregate struct {
	TagID            string                    `json:"tagId"`
	TagName          string                    `json:"tagName"`
	Credit           decimal.Decimal           `json:"credit"`
	Debit            decimal.Decimal           `json:"debit"`
	Balance          decimal.Decimal           `json:"balance"`
	TransactionCount int                       `json:"transactionCount"`
	StatementIDs     []string                  `json:"statementIds"`
	BankBreakdown    map[string]*BankBreakdown `json:"bankBreakdown"`
}

// NewTagAggregate returns a zeroed aggregate for tag.
func NewTagAggregate(tag Tag) *TagAggregate {
	return &TagAggregate{
		TagID:         tag.ID,
		TagName:       tag.Name,
		Credit:        decimal.Zero,
		Debit:         decimal.Zero,
		Balance:       decimal.Zero,
		StatementIDs:  []string{},
		BankBreakdown: map[string]*BankBreakdown{},
	}
}

// AddMovement applies one applicable movement observed in bankName.
// Movements that are not Applicable are ignored.
func (a *TagAggregate) AddMovement(m NormalizedMovement, bankName, statementID, account string) {
	if !m.Applicable() {
		return
	}

	switch m.Direction {
	case DirectionCredit:
		a.Credit = a.Credit.Add(m.AmountAbs)
	case DirectionDebit:
		a.Debit = a.Debit.Add(m.AmountAbs)
	}
	a.Balance = a.Credit.Sub(a.Debit).Round(2)
	a.TransactionCount++

	if statementID != "" && !slices.Contains(a.StatementIDs, statementID) {
		a.StatementIDs = append(a.StatementIDs, statementID)
	}

	if a.BankBreakdown == nil {
		a.BankBreakdown = map[string]*BankBreakdown{}
	}
	breakdown, ok := a.BankBreakdown[bankName]
	if !ok {
		breakdown = newBankBreakdown()
		a.BankBreakdown[bankName] = breakdown
	}
	breakdown.add(m, account)
}
