package payment

import (
	"strconv"
	"strings"
	"time"
)

// Brand identifies a card network detected from the leading digits of a PAN.
type Brand string

const (
	BrandVisa       Brand = "visa"
	BrandMastercard Brand = "mastercard"
	BrandAmex       Brand = "amex"
	BrandDiscover   Brand = "discover"
	BrandDiners     Brand = "diners"
	BrandJCB        Brand = "jcb"
	BrandUnknown    Brand = "unknown"
)

// PANCheck is the result of structurally validating a card number.
// LastFour is populated whenever the input contains at least four digits,
// even for invalid numbers, so callers can log an audit trail without ever
// persisting the full PAN.
type PANCheck struct {
	Valid    bool
	Brand    Brand
	LastFour string
}

// CardValidator performs structural validation of payment card data: Luhn
// checksum and brand detection for the PAN, expiry comparison, and CVV length.
// It never talks to a payment processor.
//
// Example:
//
//	validator := payment.NewCardValidator()
//	check := validator.ValidatePAN("4111 1111 1111 1111")
//	if !check.Valid {
//	    // reject the card
//	}
type CardValidator struct{}

// NewCardValidator creates a CardValidator instance.
func NewCardValidator() CardValidator {
	return CardValidator{}
}

// ValidatePAN strips spaces and dashes from the card number, rejects any
// remaining non-digit input, runs the Luhn checksum, and detects the brand.
// The Luhn check itself is length-agnostic; callers enforce length bounds.
func (v CardValidator) ValidatePAN(pan string) PANCheck {
	digits := NormalizePAN(pan)
	if digits == "" {
		return PANCheck{Valid: false, Brand: BrandUnknown}
	}

	check := PANCheck{
		Valid: luhnValid(digits),
		Brand: detectBrand(digits),
	}
	if len(digits) >= 4 {
		check.LastFour = digits[len(digits)-4:]
	}
	return check
}

// ValidateExpiry parses an "MM/YY" expiry and reports whether the card is
// still valid as of the given date. A card expiring in the current month is
// still valid.
func (v CardValidator) ValidateExpiry(mmYY string, asOf time.Time) bool {
	parts := strings.Split(mmYY, "/")
	if len(parts) != 2 {
		return false
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return false
	}

	year, err := strconv.Atoi(parts[1])
	if err != nil || len(parts[1]) != 2 {
		return false
	}

	// Two-digit years are compared mod 100 against the reference year.
	asOfYear := asOf.Year() % 100
	asOfMonth := int(asOf.Month())

	if year != asOfYear {
		return year > asOfYear
	}
	return month >= asOfMonth
}

// ValidateCVV accepts a CVV of length 3 or 4. The source behavior checks only
// the length, not the characters; that lenient rule is preserved.
func (v CardValidator) ValidateCVV(cvv string) bool {
	return len(cvv) == 3 || len(cvv) == 4
}

// NormalizePAN removes spaces and dashes from a card number. It returns ""
// if any other non-digit character remains. Length rules are applied to the
// normalized digit string, not the raw input.
func NormalizePAN(pan string) string {
	var b strings.Builder
	for _, r := range pan {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-':
			// separator, skip
		default:
			return ""
		}
	}
	return b.String()
}

// luhnValid runs the Luhn checksum over a digit string: scanning from the
// rightmost digit, every second digit is doubled (subtracting 9 when the
// double exceeds 9) and the total must be divisible by 10.
func luhnValid(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// detectBrand matches the PAN prefix against brand patterns in a fixed
// priority order, since some ranges overlap.
func detectBrand(digits string) Brand {
	switch {
	case hasPrefix(digits, "4"):
		return BrandVisa
	case inTwoDigitRange(digits, 51, 55) || inTwoDigitRange(digits, 22, 27):
		return BrandMastercard
	case hasPrefix(digits, "34", "37"):
		return BrandAmex
	case hasPrefix(digits, "6011", "65"):
		return BrandDiscover
	case hasPrefix(digits, "30", "36", "38", "39"):
		return BrandDiners
	case hasPrefix(digits, "35"):
		return BrandJCB
	default:
		return BrandUnknown
	}
}

func hasPrefix(digits string, prefixes ...string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(digits, p) {
			return true
		}
	}
	return false
}

func inTwoDigitRange(digits string, low, high int) bool {
	if len(digits) < 2 {
		return false
	}
	prefix, err := strconv.Atoi(digits[:2])
	if err != nil {
		return false
	}
	return prefix >= low && prefix <= high
}
