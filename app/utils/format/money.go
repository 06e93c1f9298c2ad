package format

import (
	"github.com/leekchan/accounting"
	"github.com/shopspring/decimal"
)

var inr = accounting.Accounting{Symbol: "Rs. ", Precision: 2, Thousand: ",", Decimal: "."}

// INR renders a monetary amount for PDFs and email bodies. The ASCII "Rs."
// prefix is deliberate: the core PDF fonts have no rupee glyph.
func INR(amount decimal.Decimal) string {
	return inr.FormatMoney(amount)
}
