package model

// Credentials is the plaintext payload protected by the encrypted config
// store: the on-chain addresses to watch plus the Binance API key pair.
// It is created once during first-run setup and always rewritten whole.
type Credentials struct {
	Addresses []string `json:"btc_addresses"`
	APIKey    string   `json:"binance_api_key"`
	APISecret string   `json:"binance_api_secret"`
}
