package tracker

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/nullasaservice/btc-tracker/internal/model"
	"github.com/nullasaservice/btc-tracker/internal/prompt"
	"github.com/nullasaservice/btc-tracker/internal/store"
)

// ErrPasswordMismatch is the error when the confirmation password
// differs from the first one during setup.
var ErrPasswordMismatch = errors.New("passwords do not match")

// Setup interactively collects addresses and exchange credentials,
// encrypts them under a fresh password and saves them to st. Nothing
// is written until every prompt succeeded and the passwords match.
func Setup(st *store.Store, p prompt.Prompter, out io.Writer) (model.Credentials, error) {
	fmt.Fprintln(out, "=== First-Time Setup ===")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Enter your BTC addresses (empty input to finish):")

	var creds model.Credentials
	for {
		address, err := p.ReadLine("BTC Address: ")
		if err != nil {
			return model.Credentials{}, err
		}
		if address == "" {
			break
		}
		if _, err := btcutil.DecodeAddress(address, &chaincfg.MainNetParams); err != nil {
			fmt.Fprintln(out, "Not a valid BTC address, try again.")
			continue
		}
		creds.Addresses = append(creds.Addresses, address)
	}

	fmt.Fprintln(out)
	apiKey, err := p.ReadLine("Binance API Key: ")
	if err != nil {
		return model.Credentials{}, err
	}
	apiSecret, err := p.ReadLine("Binance API Secret: ")
	if err != nil {
		return model.Credentials{}, err
	}
	creds.APIKey = apiKey
	creds.APISecret = apiSecret

	password, err := p.ReadPassword("Choose a password: ")
	if err != nil {
		return model.Credentials{}, err
	}
	defer clear(password)
	if len(password) == 0 {
		return model.Credentials{}, errors.New("password must not be empty")
	}

	confirm, err := p.ReadPassword("Confirm password: ")
	if err != nil {
		return model.Credentials{}, err
	}
	defer clear(confirm)
	if !bytes.Equal(password, confirm) {
		return model.Credentials{}, ErrPasswordMismatch
	}

	if err := st.Save(creds, password); err != nil {
		return model.Credentials{}, fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "✔ Config saved!")
	fmt.Fprintln(out)
	return creds, nil
}
