package importer

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint is the sole idempotency key for a voucher block: a stable
// digest of the voucher number and canonical date string. The export has
// no natural primary key; a block whose fingerprint is already stored is
// a re-import and gets skipped.
func Fingerprint(voucherNo, date string) string {
	h := sha256.New()
	h.Write([]byte(voucherNo))
	h.Write([]byte{0})
	h.Write([]byte(date))

	return hex.EncodeToString(h.Sum(nil))
}
