// Package currency renders integer rupee amounts for user-facing text.
package currency

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const rupeeSymbol = "₹"

//go:generate mockgen -source=currency.go -destination=mock/formatter_mock.go -package=mock
type Formatter interface {
	Format(amount int64) string
}

type rupeeFormatter struct {
	printer *message.Printer
}

// NewRupeeFormatter groups digits the Indian way: ₹5,400 and ₹1,23,456.
func NewRupeeFormatter() Formatter {
	return &rupeeFormatter{
		printer: message.NewPrinter(language.MustParse("en-IN")),
	}
}

func (f *rupeeFormatter) Format(amount int64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	formatted := f.printer.Sprintf("%v", number.Decimal(amount))
	if negative {
		return "-" + rupeeSymbol + formatted
	}
	return rupeeSymbol + formatted
}
