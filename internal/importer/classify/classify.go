// Package classify decides what a voucher detail line's free-text
// description refers to: a ledger/account line, a staff participant, or
// noise. It is pure string heuristics; rule order is the tie-break and is
// deliberate — a tax/ledger keyword always beats a name-looking shape,
// because a false negative on an account line costs more downstream than
// one on a staff line.
package classify

import "strings"

type Category string

const (
	CategoryStaff        Category = "staff"
	CategoryAccount      Category = "account"
	CategoryUnclassified Category = "unclassified"
)

// Options tune classification per call. RepeatCounts carries a
// same-voucher duplicate hint: a description repeating verbatim several
// times in one block is strong evidence for a staff name mistaken for a
// product. Strict sends short ambiguous all-caps tokens to unclassified
// instead of the account default.
type Options struct {
	Strict       bool
	RepeatCounts map[string]int
}

// Result carries the decided category, the normalized label and which
// rule decided, for tests and participant confidence scores.
type Result struct {
	Category   Category
	Label      string
	Rule       string
	Confidence float64
}

type rule struct {
	name  string
	apply func(label string, opts Options) (Result, bool)
}

// rules are tried in order; the first match wins. Name shapes outrank the
// duplicate hint: a repeated paren-shaped name is a confident staff match,
// the hint only rescues repeats that look like nothing.
var rules = []rule{
	{"keyword", keywordRule},
	{"name-shape", nameShapeRule},
	{"duplicate-hint", duplicateRule},
}

// Classify maps a detail-line description to a category. Pure function of
// the description (plus the optional hints); it never errors and logs
// nothing — a wrong guess is resolved by the default, not reported.
func Classify(desc string, opts Options) Result {
	label := normalizeLabel(desc)
	if label == "" {
		return Result{Category: CategoryUnclassified, Label: label, Rule: "empty"}
	}

	for _, r := range rules {
		if res, ok := r.apply(label, opts); ok {
			res.Label = label
			res.Rule = r.name

			return res
		}
	}

	if opts.Strict && ambiguousAllCaps(label) {
		return Result{Category: CategoryUnclassified, Label: label, Rule: "strict-default", Confidence: 0.3}
	}

	// Ambiguous lines default to ledger/product. Tuned on the source
	// dataset; a tunable, not an oracle.
	return Result{Category: CategoryAccount, Label: label, Rule: "default", Confidence: 0.5}
}

// normalizeLabel trims and collapses inner whitespace.
func normalizeLabel(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// duplicateThreshold is how many verbatim repeats within one block it
// takes to bias an otherwise unmatched description toward staff.
const duplicateThreshold = 3

func duplicateRule(label string, opts Options) (Result, bool) {
	if opts.RepeatCounts[label] >= duplicateThreshold {
		return Result{Category: CategoryStaff, Confidence: 0.6}, true
	}

	return Result{}, false
}

func ambiguousAllCaps(label string) bool {
	if label != strings.ToUpper(label) {
		return false
	}

	return len(strings.Fields(label)) <= 2 && len(label) <= 16
}
