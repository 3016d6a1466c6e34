package client

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/nullasaservice/btc-tracker/internal/model"
)

const (
	coingeckoAPI = "https://api.coingecko.com/api/v3"

	// requestTimeout bounds every outbound call made by this package.
	// A timed-out lookup is treated like any other transport failure.
	requestTimeout = 10 * time.Second
)

// CoinGeckoClient client for CoinGecko API
type CoinGeckoClient struct {
	baseURL string
	client  *http.Client
}

// NewCoinGeckoClient creates a new CoinGecko client
func NewCoinGeckoClient() *CoinGeckoClient {
	return &CoinGeckoClient{
		baseURL: coingeckoAPI,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// PriceResponse response from CoinGecko API
type PriceResponse struct {
	Bitcoin struct {
		USD float64 `json:"usd"`
		EUR float64 `json:"eur"`
	} `json:"bitcoin"`
}

// BTCPrice gets the BTC spot price in USD and EUR.
func (c *CoinGeckoClient) BTCPrice() (model.Price, error) {
	url := fmt.Sprintf("%s/simple/price?ids=bitcoin&vs_currencies=usd,eur", c.baseURL)

	resp, err := c.client.Get(url)
	if err != nil {
		return model.Price{}, fmt.Errorf("failed to get price: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Price{}, fmt.Errorf("failed to get price: status %d", resp.StatusCode)
	}

	var priceResp PriceResponse
	if err := json.NewDecoder(resp.Body).Decode(&priceResp); err != nil {
		return model.Price{}, fmt.Errorf("failed to decode price: %w", err)
	}

	if priceResp.Bitcoin.USD <= 0 || priceResp.Bitcoin.EUR <= 0 {
		return model.Price{}, fmt.Errorf("price missing from response")
	}

	return model.Price{
		USD: priceResp.Bitcoin.USD,
		EUR: priceResp.Bitcoin.EUR,
	}, nil
}
