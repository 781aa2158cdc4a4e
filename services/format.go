package services

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var inr = message.NewPrinter(language.MustParse("en-IN"))

// FormatPrice renders a rupee amount with Indian digit grouping and no
// decimal places, e.g. 150 -> "₹150", 150000 -> "₹1,50,000".
func FormatPrice(amount int64) string {
	return inr.Sprintf("₹%v", number.Decimal(amount))
}

// FormatPhone renders a 10-digit number as "+91 XXXXX XXXXX". Anything that
// does not strip down to exactly 10 digits comes back unchanged.
func FormatPhone(phone string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)
	if len(digits) != 10 {
		return phone
	}
	return fmt.Sprintf("+91 %s %s", digits[:5], digits[5:])
}
