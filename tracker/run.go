// Package tracker drives the holdings report: it values the configured
// addresses and the exchange account at the current BTC price and
// prints the report as results come in.
package tracker

import (
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcutil"
	"go.uber.org/zap"

	"github.com/nullasaservice/btc-tracker/internal/common"
	"github.com/nullasaservice/btc-tracker/internal/model"
)

// EURRate converts an assumed USD price to EUR when the live price
// lookup is skipped.
const EURRate = 0.92

// PriceSource fetches the current BTC price.
type PriceSource interface {
	BTCPrice() (model.Price, error)
}

// AddressBalancer fetches the confirmed balance of one address.
type AddressBalancer interface {
	AddressBalance(address string) (btcutil.Amount, error)
}

// ExchangeBalancer fetches the BTC spot balance of an exchange account.
type ExchangeBalancer interface {
	SpotBalance(apiKey, apiSecret string) (btcutil.Amount, error)
}

// AddressResult is the outcome of one address lookup. Unavailable is
// set when the lookup failed and the balance was counted as zero.
type AddressResult struct {
	Address     string
	Balance     btcutil.Amount
	Unavailable bool
}

// Summary aggregates one tracker run.
type Summary struct {
	Price               model.Price
	PriceAssumed        bool
	Addresses           []AddressResult
	Exchange            btcutil.Amount
	ExchangeUnavailable bool
	Total               btcutil.Amount
}

// TotalUSD values the total at the run's price.
func (s *Summary) TotalUSD() float64 { return s.Total.ToBTC() * s.Price.USD }

// TotalEUR values the total at the run's price.
func (s *Summary) TotalEUR() float64 { return s.Total.ToBTC() * s.Price.EUR }

// Tracker values a set of holdings. Failed address and exchange
// lookups are logged and counted as zero; a failed price lookup aborts
// the run.
type Tracker struct {
	Prices    PriceSource
	Addresses AddressBalancer
	Exchange  ExchangeBalancer
	Out       io.Writer
	Log       *zap.Logger
}

// Run fetches the price and all balances for creds and writes the
// report to Out. assumePrice > 0 skips the live price lookup and
// values holdings at that USD price with a fixed EUR conversion.
func (t *Tracker) Run(creds model.Credentials, assumePrice float64) (*Summary, error) {
	summary := &Summary{}

	if assumePrice > 0 {
		summary.Price = model.Price{USD: assumePrice, EUR: assumePrice * EURRate}
		summary.PriceAssumed = true
		fmt.Fprintln(t.Out, "Using mocked BTC price:")
		fmt.Fprintf(t.Out, "USD: %.2f\n", summary.Price.USD)
		fmt.Fprintf(t.Out, "EUR: %.2f  (fixed EUR rate %v)\n", summary.Price.EUR, EURRate)
		fmt.Fprintln(t.Out)
	} else {
		price, err := t.Prices.BTCPrice()
		if err != nil {
			return nil, fmt.Errorf("failed to fetch BTC price: %w", err)
		}
		summary.Price = price
		fmt.Fprintf(t.Out, "BTC Price:  USD %s | EUR %s\n", common.FormatFiat(price.USD), common.FormatFiat(price.EUR))
		fmt.Fprintln(t.Out)
	}

	fmt.Fprintln(t.Out, "=== BTC Address Balances ===")
	for _, address := range creds.Addresses {
		result := AddressResult{Address: address}
		balance, err := t.Addresses.AddressBalance(address)
		if err != nil {
			t.Log.Warn("address balance unavailable, counting as zero",
				zap.String("address", address), zap.Error(err))
			result.Unavailable = true
		} else {
			result.Balance = balance
		}
		summary.Addresses = append(summary.Addresses, result)
		summary.Total += result.Balance
		fmt.Fprintf(t.Out, "%s: %s BTC  |  USD %.2f  |  EUR %.2f\n",
			address, common.FormatBTC(result.Balance),
			result.Balance.ToBTC()*summary.Price.USD,
			result.Balance.ToBTC()*summary.Price.EUR)
	}

	fmt.Fprintln(t.Out)
	fmt.Fprintln(t.Out, "=== Binance BTC Spot Balance ===")
	exchange, err := t.Exchange.SpotBalance(creds.APIKey, creds.APISecret)
	if err != nil {
		t.Log.Warn("exchange balance unavailable, counting as zero", zap.Error(err))
		summary.ExchangeUnavailable = true
	} else {
		summary.Exchange = exchange
	}
	summary.Total += summary.Exchange
	fmt.Fprintf(t.Out, "Binance: %s BTC  |  USD %.2f  |  EUR %.2f\n",
		common.FormatBTC(summary.Exchange),
		summary.Exchange.ToBTC()*summary.Price.USD,
		summary.Exchange.ToBTC()*summary.Price.EUR)
	fmt.Fprintln(t.Out)

	fmt.Fprintln(t.Out, "=== TOTAL BTC VALUE ===")
	fmt.Fprintf(t.Out, "TOTAL BTC: %s\n", common.FormatBTC(summary.Total))
	fmt.Fprintf(t.Out, "TOTAL USD: %s\n", common.FormatFiat(summary.TotalUSD()))
	fmt.Fprintf(t.Out, "TOTAL EUR: %s\n", common.FormatFiat(summary.TotalEUR()))

	return summary, nil
}
