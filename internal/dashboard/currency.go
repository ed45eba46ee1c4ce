// internal/dashboard/currency.go
package dashboard

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var enIN = message.NewPrinter(language.MustParse("en-IN"))

// FormatCurrency formats a value with Indian digit grouping and exactly
// two decimals, e.g. 1234567.5 -> "12,34,567.50".
func FormatCurrency(v float64) string {
	return enIN.Sprint(number.Decimal(v,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatRupees prefixes the rupee sign, as the summary cards display it.
func FormatRupees(v float64) string {
	return "₹" + FormatCurrency(v)
}
