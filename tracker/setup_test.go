package tracker_test

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nullasaservice/btc-tracker/internal/prompt"
	"github.com/nullasaservice/btc-tracker/internal/store"
	"github.com/nullasaservice/btc-tracker/tracker"
)

const (
	addrP2PKH  = "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"
	addrP2SH   = "3J98t1WpEZ73CNmQviecrnyiWrnqRhWNLy"
	addrBech32 = "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
)

func newSetupStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(filepath.Join(t.TempDir(), "config.enc"))
}

func TestSetupSavesEncryptedConfig(t *testing.T) {
	st := newSetupStore(t)
	p := &prompt.Scripted{
		Lines:     []string{addrP2PKH, addrBech32, "", "api-key", "api-secret"},
		Passwords: [][]byte{[]byte("hunter2"), []byte("hunter2")},
	}
	out := &bytes.Buffer{}

	creds, err := tracker.Setup(st, p, out)
	require.NoError(t, err)

	assert.Equal(t, []string{addrP2PKH, addrBech32}, creds.Addresses)
	assert.Equal(t, "api-key", creds.APIKey)
	assert.Equal(t, "api-secret", creds.APISecret)
	assert.Contains(t, out.String(), "✔ Config saved!")

	require.True(t, st.Exists())
	loaded, err := st.Load([]byte("hunter2"))
	require.NoError(t, err)
	assert.Equal(t, creds, loaded)
}

func TestSetupRejectsInvalidAddress(t *testing.T) {
	st := newSetupStore(t)
	p := &prompt.Scripted{
		Lines:     []string{"notanaddress", addrP2SH, "", "api-key", "api-secret"},
		Passwords: [][]byte{[]byte("hunter2"), []byte("hunter2")},
	}
	out := &bytes.Buffer{}

	creds, err := tracker.Setup(st, p, out)
	require.NoError(t, err)

	assert.Equal(t, []string{addrP2SH}, creds.Addresses)
	assert.Contains(t, out.String(), "Not a valid BTC address, try again.")
}

func TestSetupKeepsDuplicateAddresses(t *testing.T) {
	st := newSetupStore(t)
	p := &prompt.Scripted{
		Lines:     []string{addrP2PKH, addrP2PKH, "", "api-key", "api-secret"},
		Passwords: [][]byte{[]byte("hunter2"), []byte("hunter2")},
	}

	creds, err := tracker.Setup(st, p, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, []string{addrP2PKH, addrP2PKH}, creds.Addresses)
}

func TestSetupPasswordMismatch(t *testing.T) {
	st := newSetupStore(t)
	p := &prompt.Scripted{
		Lines:     []string{"", "api-key", "api-secret"},
		Passwords: [][]byte{[]byte("one"), []byte("two")},
	}

	_, err := tracker.Setup(st, p, &bytes.Buffer{})
	require.ErrorIs(t, err, tracker.ErrPasswordMismatch)
	assert.False(t, st.Exists(), "no file may be written on mismatch")
}

func TestSetupEmptyPassword(t *testing.T) {
	st := newSetupStore(t)
	p := &prompt.Scripted{
		Lines:     []string{"", "api-key", "api-secret"},
		Passwords: [][]byte{{}},
	}

	_, err := tracker.Setup(st, p, &bytes.Buffer{})
	require.Error(t, err)
	assert.False(t, st.Exists())
}
