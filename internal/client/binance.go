package client

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/btcsuite/btcd/btcutil"
)

const binanceAPI = "https://api.binance.com"

// BinanceClient client for the Binance spot account API
type BinanceClient struct {
	baseURL string
	client  *http.Client
}

// NewBinanceClient creates a new Binance client
func NewBinanceClient() *BinanceClient {
	return &BinanceClient{
		baseURL: binanceAPI,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// AccountResponse response from the Binance account endpoint. Quantities
// arrive as decimal strings.
type AccountResponse struct {
	Balances []struct {
		Asset  string `json:"asset"`
		Free   string `json:"free"`
		Locked string `json:"locked"`
	} `json:"balances"`
}

// SpotBalance gets the BTC spot balance of the account, free plus locked.
// The account query must be signed: an HMAC-SHA256 over the literal query
// string (a millisecond timestamp) keyed with the API secret, appended as
// the signature parameter, with the API key sent in the X-MBX-APIKEY
// header.
func (c *BinanceClient) SpotBalance(apiKey, apiSecret string) (btcutil.Amount, error) {
	query := fmt.Sprintf("timestamp=%d", time.Now().UnixMilli())
	endpoint := fmt.Sprintf("%s/api/v3/account?%s&signature=%s",
		c.baseURL, query, sign(apiSecret, query))

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to build account request: %w", err)
	}
	req.Header.Set("X-MBX-APIKEY", apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to get account: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to get account: status %d", resp.StatusCode)
	}

	var account AccountResponse
	if err := json.NewDecoder(resp.Body).Decode(&account); err != nil {
		return 0, fmt.Errorf("failed to decode account: %w", err)
	}

	for _, balance := range account.Balances {
		if balance.Asset != "BTC" {
			continue
		}
		free, err := strconv.ParseFloat(balance.Free, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse free quantity %q: %w", balance.Free, err)
		}
		locked, err := strconv.ParseFloat(balance.Locked, 64)
		if err != nil {
			return 0, fmt.Errorf("failed to parse locked quantity %q: %w", balance.Locked, err)
		}
		amount, err := btcutil.NewAmount(free + locked)
		if err != nil {
			return 0, fmt.Errorf("invalid BTC quantity: %w", err)
		}
		return amount, nil
	}

	return 0, nil
}

// sign computes the hex HMAC-SHA256 signature Binance expects over the
// literal query string.
func sign(apiSecret, query string) string {
	mac := hmac.New(sha256.New, []byte(apiSecret))
	mac.Write([]byte(query))
	return hex.EncodeToString(mac.Sum(nil))
}
