package common

import (
	"fmt"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/dustin/go-humanize"
)

// FormatFiat renders a fiat value with thousands separators and two
// decimals, e.g. 111000 -> "111,000.00".
func FormatFiat(v float64) string {
	return humanize.FormatFloat("#,###.##", v)
}

// FormatBTC renders an amount with all eight decimal places,
// e.g. 370000000 satoshi -> "3.70000000".
func FormatBTC(amount btcutil.Amount) string {
	return fmt.Sprintf("%.8f", amount.ToBTC())
}
