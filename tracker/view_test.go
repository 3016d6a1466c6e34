package tracker_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullasaservice/btc-tracker/internal/model"
	"github.com/nullasaservice/btc-tracker/tracker"
)

func TestWriteConfig(t *testing.T) {
	out := &bytes.Buffer{}
	tracker.WriteConfig(out, model.Credentials{
		Addresses: []string{addrP2PKH, addrBech32},
		APIKey:    "api-key",
		APISecret: "api-secret",
	})

	got := out.String()
	assert.Contains(t, got, "=== Stored Configuration ===")
	assert.Contains(t, got, "1. "+addrP2PKH)
	assert.Contains(t, got, "2. "+addrBech32)
	assert.Contains(t, got, "Binance API Key:    api-key")
	assert.Contains(t, got, "Binance API Secret: api-secret")
}

func TestWriteConfigNoAddresses(t *testing.T) {
	out := &bytes.Buffer{}
	tracker.WriteConfig(out, model.Credentials{APIKey: "k", APISecret: "s"})
	assert.Contains(t, out.String(), "(none)")
}

func TestWriteAddressQR(t *testing.T) {
	out := &bytes.Buffer{}
	creds := model.Credentials{Addresses: []string{addrP2PKH, addrBech32}}

	require.NoError(t, tracker.WriteAddressQR(out, creds, 2))

	got := out.String()
	assert.True(t, strings.HasPrefix(got, addrBech32+"\n"))
	assert.Greater(t, len(got), len(addrBech32)+1, "QR block follows the address")
}

func TestWriteAddressQROutOfRange(t *testing.T) {
	out := &bytes.Buffer{}
	creds := model.Credentials{Addresses: []string{addrP2PKH}}

	assert.Error(t, tracker.WriteAddressQR(out, creds, 0))
	assert.Error(t, tracker.WriteAddressQR(out, creds, 2))
	assert.Error(t, tracker.WriteAddressQR(out, model.Credentials{}, 1))
}
