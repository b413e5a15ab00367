package format

import (
	"fmt"
	"strings"
)

// Currency formats amount in minor units for the currencies shown on the pricing table.
// Example: Currency(123456, "BRL") => "R$ 1.234,56"
func Currency(minor int64, currency string) string {
	currency = strings.ToUpper(currency)
	neg := minor < 0
	if neg {
		minor = -minor
	}
	var out string
	switch currency {
	case "BRL":
		out = "R$ " + thousandSep(minor/100, '.') + "," + fmt.Sprintf("%02d", minor%100)
	case "USD":
		out = "$" + thousandSep(minor/100, ',') + "." + fmt.Sprintf("%02d", minor%100)
	default:
		// generic minor units
		out = currency + " " + thousandSep(minor, ',')
	}
	if neg {
		return "-" + out
	}
	return out
}

// PriceParts splits a formatted BRL/USD amount into its whole and cents parts so
// templates can style them separately, e.g. ("R$ 199", ",00").
func PriceParts(minor int64, currency string) (whole, cents string) {
	s := Currency(minor, currency)
	sep := ","
	if strings.ToUpper(currency) == "USD" {
		sep = "."
	}
	if i := strings.LastIndex(s, sep); i != -1 && len(s)-i == 3 {
		return s[:i], s[i:]
	}
	return s, ""
}

func thousandSep(n int64, sep byte) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(sep)
		}
		b.WriteRune(c)
	}
	return b.String()
}
