package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	supportedRegions = []string{
		"MA",
		"FR",
	}
)

func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsedNumber, err := phonenumbers.Parse(phone, region)
		if err == nil {
			return phonenumbers.Format(parsedNumber, phonenumbers.E164)
		}
	}
	return ""
}

// DialDigits returns the number in the bare-digits form used by chat
// deep links (E.164 without the leading plus), or "" when the input
// cannot be parsed.
func DialDigits(phone string) string {
	normalized := NormalizePhone(phone)
	return strings.TrimPrefix(normalized, "+")
}
