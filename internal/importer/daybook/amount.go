package daybook

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseAmount parses an exported amount string into paise. The source
// uses Indian digit grouping: "1,18,000.50" -> 11800050. Commas and
// whitespace are grouping noise; the decimal point is a real point.
func parseAmount(s string) (int64, error) {
	clean := strings.ReplaceAll(s, ",", "")
	clean = strings.TrimSpace(clean)

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}

// looksNumeric is a cheap pre-check so date and text cells are not fed to
// the decimal parser while scanning for a detail row's amount candidate.
func looksNumeric(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}

	digits := 0

	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ',' || r == '.' || r == '-' || r == ' ':
		default:
			return false
		}
	}

	return digits > 0
}
