package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Bank is a global registry entry. TxTableName holds the physical table of the bank's
// transactions and is assigned once at creation; renames never move it.
type Bank struct {
	ID          string    `gorm:"type:varchar(64);primary_key" json:"id"`
	Name        string    `gorm:"type:varchar(150);not null" json:"bankName"`
	TxTableName string    `gorm:"column:txn_table;type:varchar(200);uniqueIndex" json:"tableName"`
	CreatedAt   time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"not null" json:"updatedAt"`
}

func (*Bank) TableName() string {
	return "banks"
}

func (b *Bank) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	return nil
}
