// Package cocfields contains the pure defaulting logic for Declaration of
// Conformity fields. No I/O: overrides collected interactively or via flags
// are applied by the caller through Apply.
package cocfields

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/example/rcgen/internal/models"
)

// DefaultClientName is the organization the certificate is issued to when the
// caller supplies none.
const DefaultClientName = "Elmet International SRL"

const certificatePrefix = "DCIR"

var trailingDigits = regexp.MustCompile(`(\d+)$`)

// Overrides carries externally supplied field values. Nil means "keep the
// computed default".
type Overrides struct {
	CertificateNo *string
	LotNo         *string
	ClientLotNo   *string
}

// ComputeDefaults derives the default COC fields for an order. The
// certificate number is the trailing digit run of the order id zero-padded to
// six digits behind a fixed prefix; the lot number is the same run with
// leading zeros stripped. Order ids without trailing digits get the sentinel
// certificate and lot "N/A". order may be nil.
func ComputeDefaults(orderID string, order *models.OrderRecord) models.COCFields {
	certDigits := "000000"
	lot := "N/A"
	if m := trailingDigits.FindStringSubmatch(orderID); m != nil {
		digits := m[1]
		certDigits = zeroPad(digits, 6)
		lot = stripLeadingZeros(digits)
	}

	revision := "N/A"
	if order != nil && isTextual(order.Revision) {
		revision = order.Revision
	}

	return models.COCFields{
		CertificateNo:   certificatePrefix + certDigits,
		LotNo:           lot,
		ClientLotNo:     "",
		DrawingRevision: revision,
		ClientName:      DefaultClientName,
	}
}

// Apply returns fields with the non-nil overrides substituted.
func Apply(fields models.COCFields, o Overrides) models.COCFields {
	if o.CertificateNo != nil {
		fields.CertificateNo = *o.CertificateNo
	}
	if o.LotNo != nil {
		fields.LotNo = *o.LotNo
	}
	if o.ClientLotNo != nil {
		fields.ClientLotNo = *o.ClientLotNo
	}
	return fields
}

func zeroPad(digits string, width int) string {
	if len(digits) >= width {
		return digits
	}
	return strings.Repeat("0", width-len(digits)) + digits
}

func stripLeadingZeros(digits string) string {
	trimmed := strings.TrimLeft(digits, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

// isTextual reports whether a revision cell holds usable text. Numeric cells
// coerced to text (a bare number) are rejected, matching the upstream ledger
// where real revisions are letter codes.
func isTextual(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if _, err := strconv.ParseFloat(s, 64); err == nil {
		return false
	}
	return true
}
