package utils

import "strings"

const whatsAppBaseURL = "https://api.whatsapp.com/send?phone=62"

// NormalizePhone strips a single leading zero so numbers are stored without the
// trunk prefix.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	return strings.TrimPrefix(phone, "0")
}

// WhatsAppLink builds a click-to-chat link for an Indonesian number stored
// without its trunk prefix.
func WhatsAppLink(phone string) string {
	return whatsAppBaseURL + phone
}
