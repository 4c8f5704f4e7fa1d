package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RecomputeTriggerManual         = "manual"
	RecomputeTriggerTagRenamed     = "tag_renamed"
	RecomputeTriggerTagDeleted     = "tag_deleted"
	RecomputeTriggerTransaction    = "transaction_updated"
	RecomputeTriggerBulkEdit       = "transactions_bulk_updated"
	RecomputeTriggerImportComplete = "import_completed"
	RecomputeTriggerScheduler      = "scheduler"

	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"

	DefaultJobMaxRetries = 3
)

// RecomputeJob is a persisted request to rebuild one user's tag summary.
// At most one pending job exists per user; further triggers coalesce into it.
type RecomputeJob struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID              string     `gorm:"type:varchar(64);not null;index:idx_recompute_jobs_user_status,priority:1" json:"userId"`
	Trigger             string     `gorm:"column:trigger_reason;type:varchar(50);not null" json:"trigger"`
	Status              string     `gorm:"type:varchar(20);not null;default:'pending';index:idx_recompute_jobs_user_status,priority:2;index:idx_recompute_jobs_status_scheduled,priority:1" json:"status"`
	RetryCount          int        `gorm:"not null;default:0" json:"retryCount"`
	MaxRetries          int        `gorm:"not null;default:3" json:"maxRetries"`
	CoalescedCount      int        `gorm:"not null;default:0" json:"coalescedCount"`
	ScheduledAt         time.Time  `gorm:"not null;index:idx_recompute_jobs_status_scheduled,priority:2" json:"scheduledAt"`
	StartedAt           *time.Time `json:"startedAt,omitempty"`
	ProcessedAt         *time.Time `json:"processedAt,omitempty"`
	ErrorMessage        string     `gorm:"type:text" json:"errorMessage,omitempty"`
	BanksScanned        int        `gorm:"not null;default:0" json:"banksScanned"`
	BanksSkipped        int        `gorm:"not null;default:0" json:"banksSkipped"`
	TransactionsSeen    int        `gorm:"not null;default:0" json:"transactionsSeen"`
	TransactionsApplied int        `gorm:"not null;default:0" json:"transactionsApplied"`
	CreatedAt           time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt           time.Time  `gorm:"not null" json:"updatedAt"`
}

func (*RecomputeJob) TableName() string {
	return "recompute_jobs"
}

func (j *RecomputeJob) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	if j.ScheduledAt.IsZero() {
		j.ScheduledAt = time.Now()
	}
	if j.MaxRetries == 0 {
		j.MaxRetries = DefaultJobMaxRetries
	}
	return nil
}

// CalculateNextScheduledTime applies exponential backoff: 2^retry seconds.
func (j *RecomputeJob) CalculateNextScheduledTime() time.Time {
	backoffSeconds := 1 << uint(j.RetryCount)
	return time.Now().Add(time.Duration(backoffSeconds) * time.Second)
}

func (j *RecomputeJob) CanRetry() bool {
	return j.RetryCount < j.MaxRetries
}

func (j *RecomputeJob) IsTerminal() bool {
	return j.Status == JobStatusCompleted || j.Status == JobStatusFailed
}
