package voucher

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// DefaultCurrency is stamped on every imported voucher. The source system
// exports amounts without a currency column.
const DefaultCurrency = "INR"

var ErrNotFound = errors.New("voucher not found")

// Voucher is one accounting transaction recovered from a contiguous run of
// source rows. RawPayload keeps the block exactly as parsed for audit;
// UniquifiedPayload is the copy whose repeated names were suffixed so that
// item and participant keys are distinguishable within the voucher.
type Voucher struct {
	ID                uuid.UUID
	Number            string
	Date              *time.Time
	Amount            int64 // in paise
	Currency          string
	CompanyID         *int64
	UploadID          uuid.UUID
	RawPayload        json.RawMessage
	UniquifiedPayload json.RawMessage
	Fingerprint       string
	CreatedAt         time.Time
}

// Item is one ledger/account line of a voucher.
type Item struct {
	ID          int64
	VoucherID   uuid.UUID
	Description string
	Quantity    int
	UnitPrice   int64 // in paise
	Amount      int64 // in paise
}

// Participant links a voucher to a resolved employee.
type Participant struct {
	ID         int64
	VoucherID  uuid.UUID
	EmployeeID int64
	Role       string
	Confidence float64
}
