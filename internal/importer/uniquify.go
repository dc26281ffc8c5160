package importer

import (
	"fmt"
	"strings"

	"github.com/taberna-labs/daybook/internal/importer/classify"
	"github.com/taberna-labs/daybook/internal/importer/daybook"
)

// Tracked uniquification categories. Counters never mix across them: a
// staff "Cash" and an account "Cash" in one block both stay verbatim.
const (
	categoryParty   = "party"
	categoryStaff   = "staff"
	categoryAccount = "account"
)

// Uniquify returns a deep copy of the block in which every repeated name
// within one tracked category is made unique: the first occurrence keeps
// its value, each later one gets a 1-based occurrence suffix ("Acme Ltd",
// "Acme Ltd 2", "Acme Ltd 3"). The copy is what gets stored as item
// descriptions and participant names; the original stays byte-for-byte
// for audit. Counter maps are built per call and never survive the block.
//
// results must be the classification of b.Lines, index-aligned.
func Uniquify(b *daybook.Block, results []classify.Result) *daybook.Block {
	out := b.Clone()
	counters := make(map[string]map[string]int, 3)

	next := func(category, value string) string {
		key := strings.ToLower(strings.TrimSpace(value))
		if key == "" {
			return value
		}

		if counters[category] == nil {
			counters[category] = make(map[string]int)
		}

		counters[category][key]++

		n := counters[category][key]
		if n == 1 {
			return value
		}

		return fmt.Sprintf("%s %d", value, n)
	}

	out.Party = next(categoryParty, b.Party)

	for i := range out.Lines {
		if i >= len(results) {
			break
		}

		switch results[i].Category {
		case classify.CategoryStaff:
			out.Lines[i].Description = next(categoryStaff, out.Lines[i].Description)
		case classify.CategoryAccount:
			out.Lines[i].Description = next(categoryAccount, out.Lines[i].Description)
		}
	}

	return out
}

// repeatCounts tallies verbatim (whitespace-normalized) description
// repeats within one block, feeding the classifier's duplicate hint.
func repeatCounts(b *daybook.Block) map[string]int {
	counts := make(map[string]int, len(b.Lines))

	for _, line := range b.Lines {
		label := strings.Join(strings.Fields(line.Description), " ")
		if label != "" {
			counts[label]++
		}
	}

	return counts
}
