package simulation

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var idPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount as "Rp1.500.000".
func FormatRupiah(amount int64) string {
	if amount < 0 {
		return "-" + idPrinter.Sprintf("Rp%d", -amount)
	}
	return idPrinter.Sprintf("Rp%d", amount)
}

var monthNames = map[time.Month]string{
	time.January:   "Januari",
	time.February:  "Februari",
	time.March:     "Maret",
	time.April:     "April",
	time.May:       "Mei",
	time.June:      "Juni",
	time.July:      "Juli",
	time.August:    "Agustus",
	time.September: "September",
	time.October:   "Oktober",
	time.November:  "November",
	time.December:  "Desember",
}

// FormatMonthYear renders "Maret 2027".
func FormatMonthYear(t time.Time) string {
	return fmt.Sprintf("%s %d", monthNames[t.Month()], t.Year())
}
