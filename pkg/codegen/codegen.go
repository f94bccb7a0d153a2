// Package codegen derives the human-readable product codes and stock batch
// numbers used across the catalog.
package codegen

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// SequenceWidth is the number of digits in a product code suffix.
const SequenceWidth = 3

// Prefix derives a product code prefix from a category name: everything
// except ASCII letters is stripped, the remainder is upper-cased and
// truncated to three characters, so the prefix always matches [A-Z]{0,3}.
// A category with fewer than three such letters yields a shorter prefix,
// never a padded one.
func Prefix(categoryName string) string {
	var b strings.Builder
	for _, r := range categoryName {
		r = unicode.ToUpper(r)
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
			if b.Len() >= 3 {
				break
			}
		}
	}
	return b.String()
}

// FormatProductCode builds a product code from a prefix and a sequence
// number, zero-padding the suffix to three digits.
func FormatProductCode(prefix string, seq int) string {
	return fmt.Sprintf("%s%0*d", prefix, SequenceWidth, seq)
}

// ParseSequence extracts the numeric suffix of a code that consists of
// exactly the given prefix followed by a three-digit sequence. The second
// return value is false when the code does not match that shape.
func ParseSequence(code, prefix string) (int, bool) {
	if len(code) != len(prefix)+SequenceWidth || !strings.HasPrefix(code, prefix) {
		return 0, false
	}
	seq := 0
	for _, r := range code[len(prefix):] {
		if r < '0' || r > '9' {
			return 0, false
		}
		seq = seq*10 + int(r-'0')
	}
	return seq, true
}

// BatchNumber builds a stock batch number of the form
// BATCH_<productCode>_<DDMMYY> from the batch's creation date. Batch numbers
// are not unique; several batches of one product may share a day.
func BatchNumber(productCode string, createdAt time.Time) string {
	return fmt.Sprintf("BATCH_%s_%s", productCode, createdAt.Format("020106"))
}
