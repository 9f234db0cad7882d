package validator

import (
	"net/mail"
	"net/netip"
	"strings"
	"time"

	"github.com/dlclark/regexp2"
)

// FormatFunc checks one string format. A nil FormatFunc means the format name
// is outside the supported list and the keyword is an annotation only.
type FormatFunc func(s string) bool

// FormatCheck returns the checker for a supported format name. The supported
// list is fixed: date-time, date, time, email, hostname, ipv4, ipv6, regex.
func FormatCheck(name string) FormatFunc {
	switch name {
	case "date-time":
		return isRFC3339DateTime
	case "date":
		return isRFC3339Date
	case "time":
		return isRFC3339Time
	case "email":
		return isEmail
	case "hostname":
		return isHostname
	case "ipv4":
		return isIPv4
	case "ipv6":
		return isIPv6
	case "regex":
		return isECMARegex
	}
	return nil
}

func isRFC3339DateTime(s string) bool {
	// Accept RFC3339Nano (trailing zeros optional).
	if _, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return true
	}
	_, err := time.Parse(time.RFC3339, s)
	return err == nil
}

func isRFC3339Date(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isRFC3339Time(s string) bool {
	for _, layout := range []string{"15:04:05Z07:00", "15:04:05.999999999Z07:00"} {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func isEmail(s string) bool {
	a, err := mail.ParseAddress(s)
	// Reject the name-addr form; the format targets the addr-spec only.
	return err == nil && a.Address == s
}

func isHostname(s string) bool {
	if len(s) == 0 || len(s) > 253 {
		return false
	}
	for _, label := range strings.Split(strings.TrimSuffix(s, "."), ".") {
		if len(label) == 0 || len(label) > 63 {
			return false
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return false
		}
		for i := 0; i < len(label); i++ {
			c := label[i]
			if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '-') {
				return false
			}
		}
	}
	return true
}

func isIPv4(s string) bool {
	a, err := netip.ParseAddr(s)
	return err == nil && a.Is4()
}

func isIPv6(s string) bool {
	a, err := netip.ParseAddr(s)
	return err == nil && a.Is6() && !a.Is4()
}

func isECMARegex(s string) bool {
	_, err := regexp2.Compile(s, regexp2.ECMAScript)
	return err == nil
}
