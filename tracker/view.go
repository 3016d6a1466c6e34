package tracker

import (
	"fmt"
	"io"

	"github.com/skip2/go-qrcode"

	"github.com/nullasaservice/btc-tracker/internal/model"
)

// WriteConfig prints the decrypted credentials in the clear. The
// caller has already proven possession of the password, so this is an
// intentional disclosure backing the --show-config flag.
func WriteConfig(out io.Writer, creds model.Credentials) {
	fmt.Fprintln(out, "=== Stored Configuration ===")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "BTC addresses:")
	if len(creds.Addresses) == 0 {
		fmt.Fprintln(out, "  (none)")
	}
	for i, address := range creds.Addresses {
		fmt.Fprintf(out, "  %d. %s\n", i+1, address)
	}
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Binance API Key:    %s\n", creds.APIKey)
	fmt.Fprintf(out, "Binance API Secret: %s\n", creds.APISecret)
}

// WriteAddressQR prints the n-th stored address (1-based, the order
// shown by WriteConfig) as a terminal QR code.
func WriteAddressQR(out io.Writer, creds model.Credentials, n int) error {
	if len(creds.Addresses) == 0 {
		return fmt.Errorf("no addresses stored")
	}
	if n < 1 || n > len(creds.Addresses) {
		return fmt.Errorf("address number %d out of range 1..%d", n, len(creds.Addresses))
	}
	address := creds.Addresses[n-1]

	qr, err := qrcode.New(address, qrcode.Medium)
	if err != nil {
		return fmt.Errorf("failed to create QR code: %w", err)
	}
	fmt.Fprintln(out, address)
	fmt.Fprint(out, qr.ToSmallString(false))
	return nil
}
