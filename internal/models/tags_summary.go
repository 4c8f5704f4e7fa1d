package models

import (
	"time"
)

const (
	TagsSummaryType     = "tags_summary"
	tagsSummaryIDPrefix = "tags_summary_"
)

// TagsSummarySnapshot is the materialized per-user aggregate. It is replaced
// wholesale on every recompute and keeps no history.
type TagsSummarySnapshot struct {
	ID         string         `gorm:"type:varchar(100);primary_key" json:"id"`
	UserID     string         `gorm:"type:varchar(64);not null;uniqueIndex" json:"userId"`
	Type       string         `gorm:"type:varchar(32);not null" json:"type"`
	Tags       []TagAggregate `gorm:"type:text;serializer:json" json:"tags"`
	CreatedAt  time.Time      `gorm:"not null" json:"createdAt"`
	UpdatedAt  time.Time      `gorm:"not null" json:"updatedAt"`
	ComputedAt time.Time      `gorm:"not null" json:"computedAt"`
}

func (*TagsSummarySnapshot) TableName() string {
	return "tags_summaries"
}

// TagsSummaryID is the deterministic snapshot key for userID.
func TagsSummaryID(userID string) string {
	return tagsSummaryIDPrefix + userID
}

// RecomputeResult reports what one aggregation pass did.
type RecomputeResult struct {
	UserID                   string    `json:"userId"`
	TagCount                 int       `json:"tagCount"`
	BanksScanned             int       `json:"banksScanned"`
	BanksSkipped             int       `json:"banksSkipped"`
	TransactionsSeen         int       `json:"transactionsSeen"`
	TransactionsApplied      int       `json:"transactionsApplied"`
	TransactionsUnclassified int       `json:"transactionsUnclassified"`
	TransactionsUntagged     int       `json:"transactionsUntagged"`
	SnapshotWritten          bool      `json:"snapshotWritten"`
	ComputedAt               time.Time `json:"computedAt"`
	DurationMs               int64     `json:"durationMs"`
}
