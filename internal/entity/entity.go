package entity

import (
	"context"
	"database/sql"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Kind distinguishes the two reference-entity tables.
type Kind string

const (
	KindCompany  Kind = "company"
	KindEmployee Kind = "employee"
)

// Ref is a resolved reference entity.
type Ref struct {
	ID   int64
	Kind Kind
	Name string
	Key  string
}

// Querier is satisfied by both *sql.DB and *sql.Tx, so resolution can run
// inside a voucher block's transaction.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeKey derives the natural lookup key for a display name:
// diacritics folded, lower-cased, everything non-alphanumeric stripped.
// "Acme  Traders Pvt. Ltd" and "ACMÉ TRADERS PVT LTD" share one key.
func NormalizeKey(name string) string {
	folded, _, err := transform.String(foldMarks, name)
	if err != nil {
		folded = name
	}

	var b strings.Builder
	b.Grow(len(folded))

	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}

	return b.String()
}
