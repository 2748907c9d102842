package order

import (
	"fmt"
	"time"
)

const codePrefix = "NEXM"

// FormatCode renders the canonical order code:
// NEXM-YYYYMMDD-{buyerID}/{sequence zero-padded to 3 digits}.
// Sequences beyond 999 simply grow in width; uniqueness, not fixed width, is
// the guarantee clients may rely on.
func FormatCode(date time.Time, buyerID string, seq int) string {
	return fmt.Sprintf("%s-%s-%s/%03d", codePrefix, date.Format("20060102"), buyerID, seq)
}
