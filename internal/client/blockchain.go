package client

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
)

const (
	blockchainInfoAPI = "https://blockchain.info"

	// confirmations is the minimum depth a payment needs before it
	// counts toward an address balance.
	confirmations = 6
)

// BlockchainInfoClient client for the blockchain.info query API
type BlockchainInfoClient struct {
	baseURL string
	client  *http.Client
}

// NewBlockchainInfoClient creates a new blockchain.info client
func NewBlockchainInfoClient() *BlockchainInfoClient {
	return &BlockchainInfoClient{
		baseURL: blockchainInfoAPI,
		client: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// AddressBalance gets the confirmed balance of one on-chain address.
// The endpoint answers with a plain-text satoshi count.
func (c *BlockchainInfoClient) AddressBalance(address string) (btcutil.Amount, error) {
	endpoint := fmt.Sprintf("%s/q/addressbalance/%s?confirmations=%d",
		c.baseURL, url.PathEscape(address), confirmations)

	resp, err := c.client.Get(endpoint)
	if err != nil {
		return 0, fmt.Errorf("failed to get balance for %s: %w", address, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("failed to get balance for %s: status %d", address, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("failed to read balance for %s: %w", address, err)
	}

	satoshis, err := strconv.ParseInt(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse balance for %s: %w", address, err)
	}
	if satoshis < 0 {
		return 0, fmt.Errorf("negative balance %d for %s", satoshis, address)
	}

	return btcutil.Amount(satoshis), nil
}
