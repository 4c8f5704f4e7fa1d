package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TagsField is the key of Data holding the raw tag references.
const TagsField = "tags"

// accountNumberFields are the raw columns that carry a human account number, in priority order.
var accountNumberFields = []string{
	"accountNumber",
	"account_number",
	"Account Number",
	"Account No",
	"Account No.",
	"A/c No",
	"A/C No.",
	"maskedAccountNumber",
}

// TransactionRecord is one row of a per-bank transaction table.
// Identity columns are typed; every other exported column lives in Data.
type TransactionRecord struct {
	ID          string    `gorm:"type:varchar(64);primary_key" json:"id"`
	UserID      string    `gorm:"type:varchar(64);not null;index" json:"userId"`
	AccountID   string    `gorm:"type:varchar(64);index" json:"accountId,omitempty"`
	StatementID string    `gorm:"type:varchar(64)" json:"statementId,omitempty"`
	Data        JSONBMap  `gorm:"type:text;not null" json:"data"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (r *TransactionRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.Data == nil {
		r.Data = JSONBMap{}
	}
	return nil
}

// TagRefs parses the raw tags field.
func (r *TransactionRecord) TagRefs() []TagRef {
	if r.Data == nil {
		return nil
	}
	return ParseTagRefs(r.Data[TagsField])
}

// AccountDisplay prefers a human account number and falls back to the first
// eight characters of the opaque account id.
func (r *TransactionRecord) AccountDisplay() string {
	for _, field := range accountNumberFields {
		if v, ok := r.Data.StringValue(field); ok {
			return v
		}
	}
	if len(r.AccountID) > 8 {
		return r.AccountID[:8]
	}
	return r.AccountID
}
