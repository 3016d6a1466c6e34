// Package config holds the command line options of the tracker.
package config

import (
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Options are the knobs settable on the command line. Everything else
// lives in the encrypted configuration file.
type Options struct {
	AssumePrice float64 `long:"assume-price" description:"Skip the price lookup and value holdings at this USD price" value-name:"USD"`
	ShowConfig  bool    `long:"show-config" description:"Print the decrypted configuration and exit"`
	QR          int     `long:"qr" description:"Print the n-th stored address as a QR code and exit" value-name:"N"`
}

// Load parses args (without the program name) into Options. Help
// requests surface as a *flags.Error with type flags.ErrHelp.
func Load(args []string) (*Options, error) {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return nil, err
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("unexpected argument: %q", rest[0])
	}
	if opts.AssumePrice < 0 {
		return nil, fmt.Errorf("--assume-price must be positive, got %v", opts.AssumePrice)
	}
	if opts.QR < 0 {
		return nil, fmt.Errorf("--qr must be a positive address number, got %d", opts.QR)
	}
	return opts, nil
}
