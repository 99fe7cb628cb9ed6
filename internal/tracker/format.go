package tracker

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.English)
	titler  = cases.Title(language.English)
)

// Formatter renders amounts with a currency prefix, grouped by thousands and
// rounded to zero decimal places. This is a presentation contract only;
// stored amounts keep their full precision.
type Formatter struct {
	Prefix string
}

// Amount formats a decimal amount, e.g. "Rp 1,000,000".
func (f Formatter) Amount(d decimal.Decimal) string {
	return f.Prefix + " " + printer.Sprintf("%d", d.Round(0).IntPart())
}

func title(s string) string {
	return titler.String(s)
}
