package models

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagAggregate_AddMovement_RentScenario(t *testing.T) {
	agg := NewTagAggregate(Tag{ID: "tag-rent", Name: "Rent"})

	agg.AddMovement(NormalizedMovement{AmountAbs: decimal.NewFromInt(2000), Direction: DirectionCredit}, "HDFC", "stmt-1", "XXXX1234")
	agg.AddMovement(NormalizedMovement{AmountAbs: decimal.NewFromInt(500), Direction: DirectionDebit}, "HDFC", "stmt-1", "XXXX1234")

	assert.True(t, agg.Credit.Equal(decimal.NewFromInt(2000)))
	assert.True(t, agg.Debit.Equal(decimal.NewFromInt(500)))
	assert.True(t, agg.Balance.Equal(decimal.NewFromInt(1500)))
	assert.Equal(t, 2, agg.TransactionCount)
	assert.Equal(t, []string{"stmt-1"}, agg.StatementIDs)

	require.Contains(t, agg.BankBreakdown, "HDFC")
	hdfc := agg.BankBreakdown["HDFC"]
	assert.True(t, hdfc.Credit.Equal(agg.Credit))
	assert.True(t, hdfc.Debit.Equal(agg.Debit))
	assert.True(t, hdfc.Balance.Equal(agg.Balance))
	assert.Equal(t, 2, hdfc.TransactionCount)
	assert.Equal(t, []string{"XXXX1234"}, hdfc.Accounts)
}

func TestTagAggregate_AddMovement_IgnoresInapplicable(t *testing.T) {
	agg := NewTagAggregate(Tag{ID: "t", Name: "T"})

	agg.AddMovement(UnknownMovement(), "SBI", "s", "a")
	agg.AddMovement(NormalizedMovement{AmountAbs: decimal.Zero, Direction: DirectionCredit}, "SBI", "s", "a")

	assert.Equal(t, 0, agg.TransactionCount)
	assert.Empty(t, agg.BankBreakdown)
	assert.Empty(t, agg.StatementIDs)
}

func TestTagAggregate_BalanceInvariant(t *testing.T) {
	faker := gofakeit.New(42)
	agg := NewTagAggregate(Tag{ID: "t", Name: "T"})
	banks := []string{"HDFC", "ICICI", "SBI"}

	for i := 0; i < 200; i++ {
		direction := DirectionCredit
		if faker.Bool() {
			direction = DirectionDebit
		}
		amount := decimal.NewFromFloat(faker.Float64Range(0.01, 10000)).Round(2)
		bank := banks[faker.IntRange(0, len(banks)-1)]

		agg.AddMovement(NormalizedMovement{AmountAbs: amount, Direction: direction}, bank, faker.UUID(), faker.Numerify("XXXX####"))

		require.True(t, agg.Balance.Equal(agg.Credit.Sub(agg.Debit).Round(2)))
		for _, breakdown := range agg.BankBreakdown {
			require.True(t, breakdown.Balance.Equal(breakdown.Credit.Sub(breakdown.Debit).Round(2)))
		}
	}

	total := 0
	for _, breakdown := range agg.BankBreakdown {
		total += breakdown.TransactionCount
	}
	assert.Equal(t, agg.TransactionCount, total)
}

func TestTagAggregate_AccountsAndStatementsAreOrderedSets(t *testing.T) {
	agg := NewTagAggregate(Tag{ID: "t", Name: "T"})
	credit := NormalizedMovement{AmountAbs: decimal.NewFromInt(1), Direction: DirectionCredit}

	agg.AddMovement(credit, "HDFC", "s2", "acc-b")
	agg.AddMovement(credit, "HDFC", "s1", "acc-a")
	agg.AddMovement(credit, "HDFC", "s2", "acc-b")
	agg.AddMovement(credit, "HDFC", "", "")

	assert.Equal(t, []string{"s2", "s1"}, agg.StatementIDs)
	assert.Equal(t, []string{"acc-b", "acc-a"}, agg.BankBreakdown["HDFC"].Accounts)
	assert.Equal(t, 4, agg.TransactionCount)
}
