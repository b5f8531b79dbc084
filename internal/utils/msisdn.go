package utils

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// IndiaCountryCode is prefixed to ten-digit mobile numbers
const IndiaCountryCode = "91"

var indianMobile = regexp.MustCompile(`^[6-9]\d{9}$`)

// NormalizeMSISDN validates an Indian mobile number and returns it as 91XXXXXXXXXX
func NormalizeMSISDN(msisdn string) (string, error) {
	stripped := regexp.MustCompile(`[^0-9]`).ReplaceAllString(msisdn, "")

	switch {
	case len(stripped) == 12 && strings.HasPrefix(stripped, IndiaCountryCode):
		stripped = stripped[2:]
	case len(stripped) == 11 && strings.HasPrefix(stripped, "0"):
		stripped = stripped[1:]
	}

	if !indianMobile.MatchString(stripped) {
		return "", fmt.Errorf("invalid mobile number %q", msisdn)
	}
	return IndiaCountryCode + stripped, nil
}

// WhatsAppLink builds a wa.me deep link that opens a chat with the number prefilled with text
func WhatsAppLink(msisdn, text string) (string, error) {
	number, err := NormalizeMSISDN(msisdn)
	if err != nil {
		return "", err
	}
	link := "https://wa.me/" + number
	if text != "" {
		link += "?text=" + url.QueryEscape(text)
	}
	return link, nil
}
