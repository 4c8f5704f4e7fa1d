package models

import "github.com/shopspring/decimal"

// Direction is the credit/debit classification of a movement.
type Direction string

const (
	DirectionCredit  Direction = "CR"
	DirectionDebit   Direction = "DR"
	DirectionUnknown Direction = "Unknown"
)

// NormalizedMovement is the classifier output for one transaction. It is never persisted.
type NormalizedMovement struct {
	AmountAbs decimal.Decimal `json:"amountAbs"`
	Direction Direction       `json:"direction"`
}

// UnknownMovement is returned when no usable signal is found.
func UnknownMovement() NormalizedMovement {
	return NormalizedMovement{AmountAbs: decimal.Zero, Direction: DirectionUnknown}
}

// Applicable reports whether the movement may be accumulated.
func (m NormalizedMovement) Applicable() bool {
	return m.Direction != DirectionUnknown && m.AmountAbs.IsPositive()
}
