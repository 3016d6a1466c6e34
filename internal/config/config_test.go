package config

import (
	"errors"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	opts, err := Load(nil)
	require.NoError(t, err)

	assert.Zero(t, opts.AssumePrice)
	assert.False(t, opts.ShowConfig)
	assert.Zero(t, opts.QR)
}

func TestLoadFlags(t *testing.T) {
	opts, err := Load([]string{"--assume-price", "50000", "--show-config", "--qr", "2"})
	require.NoError(t, err)

	assert.Equal(t, 50000.0, opts.AssumePrice)
	assert.True(t, opts.ShowConfig)
	assert.Equal(t, 2, opts.QR)
}

func TestLoadNegativeAssumePrice(t *testing.T) {
	_, err := Load([]string{"--assume-price=-1"})
	assert.Error(t, err)
}

func TestLoadNegativeQR(t *testing.T) {
	_, err := Load([]string{"--qr=-3"})
	assert.Error(t, err)
}

func TestLoadUnexpectedArgument(t *testing.T) {
	_, err := Load([]string{"extra"})
	assert.Error(t, err)
}

func TestLoadUnknownFlag(t *testing.T) {
	_, err := Load([]string{"--bogus"})
	require.Error(t, err)

	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) {
		assert.NotEqual(t, flags.ErrHelp, flagsErr.Type)
	}
}

func TestLoadHelp(t *testing.T) {
	_, err := Load([]string{"--help"})
	require.Error(t, err)

	var flagsErr *flags.Error
	require.ErrorAs(t, err, &flagsErr)
	assert.Equal(t, flags.ErrHelp, flagsErr.Type)
}
