package classify

import (
	"regexp"
	"strings"
)

// ledgerKeywords mark tax/GST/ledger vocabulary. Matched as whole tokens
// of the upper-cased description, so "Saleem Khan" is not a SALE hit but
// "LOCAL SALE" is.
var ledgerKeywords = map[string]struct{}{
	"GST": {}, "CGST": {}, "SGST": {}, "IGST": {}, "CESS": {},
	"TCS": {}, "TDS": {}, "SALE": {}, "SALES": {}, "OUTPUT": {},
	"INPUT": {}, "ROUND": {}, "FREIGHT": {}, "DISCOUNT": {},
	"CASH": {}, "BANK": {},
}

func keywordRule(label string, _ Options) (Result, bool) {
	upper := strings.ToUpper(label)

	for _, token := range strings.FieldsFunc(upper, func(r rune) bool {
		return !(r >= 'A' && r <= 'Z') && !(r >= '0' && r <= '9')
	}) {
		if _, ok := ledgerKeywords[token]; ok {
			return Result{Category: CategoryAccount, Confidence: 0.95}, true
		}
	}

	return Result{}, false
}

// Human-name shapes, in decreasing confidence:
//   - capitalized words with a trailing parenthesized location or
//     abbreviation: "Rahul Sharma (UK)", "Priya Nair (Lucknow)"
//   - capitalized words with a trailing short location-code token:
//     "Rahul Sharma DEL"
//   - "Surname, Forename" with both parts capitalized: "Sharma, Rahul"
var nameShapes = []struct {
	re         *regexp.Regexp
	confidence float64
}{
	{regexp.MustCompile(`^(?:[A-Z][a-z]+ )+\([A-Za-z][A-Za-z .]*\)$`), 0.9},
	{regexp.MustCompile(`^(?:[A-Z][a-z]+ )+[A-Z]{2,3}$`), 0.8},
	{regexp.MustCompile(`^[A-Z][a-z]+, ?[A-Z][a-z]+$`), 0.75},
}

func nameShapeRule(label string, _ Options) (Result, bool) {
	for _, shape := range nameShapes {
		if shape.re.MatchString(label) {
			return Result{Category: CategoryStaff, Confidence: shape.confidence}, true
		}
	}

	return Result{}, false
}
