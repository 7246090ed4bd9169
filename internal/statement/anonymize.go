package statement

import (
	"regexp"
	"strings"
)

// Statement descriptions routinely leak card numbers, contact details, and
// SSNs. Parsers mask them before transactions leave this package.
var (
	cardNumberRe = regexp.MustCompile(`\b(?:\d[ -]*?){13,16}\b`)
	emailRe      = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe      = regexp.MustCompile(`\b(?:\+?\d{1,3}[- ]?)?\(?\d{3}\)?[- ]?\d{3}[- ]?\d{4}\b`)
	ssnRe        = regexp.MustCompile(`\b\d{3}-\d{2}-\d{4}\b`)
)

// MaskPII redacts card numbers, emails, phone numbers, and SSNs from a
// transaction description. Card numbers keep their last four digits.
func MaskPII(text string) string {
	text = cardNumberRe.ReplaceAllStringFunc(text, maskCardNumber)
	text = emailRe.ReplaceAllString(text, "[EMAIL]")
	text = phoneRe.ReplaceAllString(text, "[PHONE]")
	text = ssnRe.ReplaceAllString(text, "[SSN]")
	return text
}

func maskCardNumber(match string) string {
	digits := strings.NewReplacer(" ", "", "-", "").Replace(match)
	return "XXXX-XXXX-XXXX-" + digits[len(digits)-4:]
}

// MaskAccountNumber keeps only the last four characters of an account
// number, e.g. "XXXX-1234".
func MaskAccountNumber(account string) string {
	if len(account) < 4 {
		return strings.Repeat("X", len(account))
	}
	return "XXXX-" + account[len(account)-4:]
}
