package daybook

import "time"

// Marker records which side of the ledger a detail amount came from, when
// it was recovered from the debit/credit columns rather than inline.
type Marker string

const (
	MarkerNone   Marker = ""
	MarkerDebit  Marker = "debit"
	MarkerCredit Marker = "credit"
)

// DetailLine is one row beneath a block-start row: a ledger account, a
// staff participant, or noise. Classification happens downstream; the
// reader only captures description and amount candidates.
type DetailLine struct {
	Description string `json:"description"`
	Amount      *int64 `json:"amount,omitempty"` // in paise
	Marker      Marker `json:"marker,omitempty"`
}

// Block is one voucher recovered from a contiguous run of source rows:
// the block-start row plus every detail row up to the next block-start.
type Block struct {
	VoucherNo string       `json:"voucher_no"`
	Type      string       `json:"type"`
	Party     string       `json:"party"`
	Date      time.Time    `json:"date"`
	Serial    float64      `json:"date_serial,omitempty"`
	RawDate   string       `json:"raw_date,omitempty"`
	Debit     *int64       `json:"debit,omitempty"`  // in paise
	Credit    *int64       `json:"credit,omitempty"` // in paise
	Lines     []DetailLine `json:"lines"`
}

// Amount derives the voucher total: debit if present, else credit, else 0.
func (b *Block) Amount() int64 {
	if b.Debit != nil {
		return *b.Debit
	}

	if b.Credit != nil {
		return *b.Credit
	}

	return 0
}

// DateString is the canonical date representation used for fingerprinting.
// Falls back to the raw cell text when the date never parsed, so the same
// malformed block still fingerprints identically on re-import.
func (b *Block) DateString() string {
	if !b.Date.IsZero() {
		return b.Date.Format(time.DateOnly)
	}

	return b.RawDate
}

// Clone returns a deep copy; the uniquifier must never mutate the parsed
// block, which is persisted byte-for-byte for audit.
func (b *Block) Clone() *Block {
	out := *b
	out.Lines = make([]DetailLine, len(b.Lines))

	for i, line := range b.Lines {
		cp := line

		if line.Amount != nil {
			v := *line.Amount
			cp.Amount = &v
		}

		out.Lines[i] = cp
	}

	if b.Debit != nil {
		v := *b.Debit
		out.Debit = &v
	}

	if b.Credit != nil {
		v := *b.Credit
		out.Credit = &v
	}

	return &out
}
