// Command btc-tracker values BTC held on-chain and on Binance and
// prints a fiat summary. Credentials live in an encrypted file next to
// the executable; the first run creates it interactively.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"

	"github.com/nullasaservice/btc-tracker/internal/client"
	"github.com/nullasaservice/btc-tracker/internal/config"
	"github.com/nullasaservice/btc-tracker/internal/model"
	"github.com/nullasaservice/btc-tracker/internal/prompt"
	"github.com/nullasaservice/btc-tracker/internal/store"
	"github.com/nullasaservice/btc-tracker/tracker"
)

const storeFile = "config.enc"

func main() {
	opts, err := config.Load(os.Args[1:])
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println("=== BTC Tracker ===")
	fmt.Println()

	path, err := storePath()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	st := store.New(path)
	prompter := prompt.NewTerminal()

	var creds model.Credentials
	if st.Exists() {
		creds, err = unlock(st, prompter)
		if errors.Is(err, store.ErrAuthentication) {
			fmt.Fprintln(os.Stderr, "Invalid password or corrupted config.")
			os.Exit(1)
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	} else {
		if opts.ShowConfig || opts.QR > 0 {
			fmt.Fprintln(os.Stderr, "No config file yet. Run once without flags to set it up.")
			os.Exit(1)
		}
		creds, err = tracker.Setup(st, prompter, os.Stdout)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	// Both views terminate before any network activity.
	if opts.ShowConfig {
		tracker.WriteConfig(os.Stdout, creds)
		return
	}
	if opts.QR > 0 {
		if err := tracker.WriteAddressQR(os.Stdout, creds, opts.QR); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	t := &tracker.Tracker{
		Prices:    client.NewCoinGeckoClient(),
		Addresses: client.NewBlockchainInfoClient(),
		Exchange:  client.NewBinanceClient(),
		Out:       os.Stdout,
		Log:       log,
	}
	if _, err := t.Run(creds, opts.AssumePrice); err != nil {
		log.Error("run failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Failed to fetch BTC price. Exiting.")
		os.Exit(1)
	}
}

// unlock prompts for the password and decrypts the stored credentials.
func unlock(st *store.Store, p prompt.Prompter) (model.Credentials, error) {
	password, err := p.ReadPassword("Password: ")
	if err != nil {
		return model.Credentials{}, err
	}
	defer clear(password)
	return st.Load(password)
}

// storePath resolves the config file next to the executable.
func storePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), storeFile), nil
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
