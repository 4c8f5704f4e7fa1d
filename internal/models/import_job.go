package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ImportSourceCSV  = "csv"
	ImportSourceXLSX = "xlsx"
)

// ImportJob tracks one bulk upload into a bank table.
// Progress lives here rather than in process memory so any instance can report it.
type ImportJob struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID        string     `gorm:"type:varchar(64);not null;index" json:"userId"`
	BankID        string     `gorm:"type:varchar(64);not null" json:"bankId"`
	AccountID     string     `gorm:"type:varchar(64)" json:"accountId,omitempty"`
	StatementID   string     `gorm:"type:varchar(64)" json:"statementId,omitempty"`
	Source        string     `gorm:"type:varchar(10);not null" json:"source"`
	FileName      string     `gorm:"type:varchar(255)" json:"fileName,omitempty"`
	Status        string     `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TotalRows     int        `gorm:"not null;default:0" json:"totalRows"`
	ProcessedRows int        `gorm:"not null;default:0" json:"processedRows"`
	FailedRows    int        `gorm:"not null;default:0" json:"failedRows"`
	ErrorMessage  string     `gorm:"type:text" json:"errorMessage,omitempty"`
	CreatedAt     time.Time  `gorm:"not null" json:"createdAt"`
	UpdatedAt     time.Time  `gorm:"not null" json:"updatedAt"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

func (*ImportJob) TableName() string {
	return "import_jobs"
}

func (j *ImportJob) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// PercentComplete is derived from the counters; 0 when the total is not yet known.
func (j *ImportJob) PercentComplete() float64 {
	if j.TotalRows == 0 {
		return 0
	}
	done := j.ProcessedRows + j.FailedRows
	return float64(done) * 100 / float64(j.TotalRows)
}
