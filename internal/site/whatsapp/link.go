package whatsapp

import (
	"net/url"

	"atlascars/pkg/sanitizer"
)

// Link builds a wa.me deep link that opens a chat with the agency number
// and the composed message prefilled.
func Link(agencyPhone, message string) string {
	digits := sanitizer.DialDigits(agencyPhone)

	query := url.Values{}
	query.Set("text", message)

	return "https://wa.me/" + digits + "?" + query.Encode()
}
