package utils

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var moneyPrinter = message.NewPrinter(language.English)

// FormatMoney renders an amount with thousands separators for user-facing
// messages, e.g. 22500 -> "22,500".
func FormatMoney(amount int64) string {
	return moneyPrinter.Sprintf("%d", amount)
}
