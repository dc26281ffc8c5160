package upload

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of one import run.
type Status string

const (
	StatusQueued     Status = "queued"
	StatusProcessing Status = "processing"
	StatusDone       Status = "done"
	StatusFailed     Status = "failed"
)

var ErrNotFound = errors.New("upload not found")

// Upload tracks one ingestion run over one source file. Rows are counted
// in voucher blocks. A run can end done with a non-empty error list:
// duplicates and per-block write failures are recorded, not fatal.
type Upload struct {
	ID            uuid.UUID
	Filename      string
	SourcePath    string
	Status        Status
	ProcessedRows int
	TotalRows     int
	Errors        []string
	AuditPath     *string
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

// Terminal reports whether the run has finished.
func (u *Upload) Terminal() bool {
	return u.Status == StatusDone || u.Status == StatusFailed
}
