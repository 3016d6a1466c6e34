package model

// Price is a BTC spot price in the two display currencies.
type Price struct {
	USD float64
	EUR float64
}
