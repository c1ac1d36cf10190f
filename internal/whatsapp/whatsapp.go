// Package whatsapp builds click-to-chat links for customer enquiries.
package whatsapp

import (
	"net/url"
	"strings"
)

// DefaultNumber is the store's WhatsApp number in international format.
const DefaultNumber = "918072153196"

// Link returns a wa.me deep link that opens a chat with number prefilled
// with message. Spaces are encoded as %20 so the text survives every client.
func Link(number, message string) string {
	number = strings.TrimPrefix(strings.TrimSpace(number), "+")
	if number == "" {
		number = DefaultNumber
	}
	text := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + number + "?text=" + text
}
