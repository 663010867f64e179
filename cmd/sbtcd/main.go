// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2026 The sbtc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command sbtcd is a thin driver around node/mining's block template
// assembler: it parses the operator-facing flags spec.md §6 names into a
// mining.Policy, wires the three narrow collaborators (chain, mempool,
// contract engine) the assembler consumes, and runs CreateNewBlock once
// against the current reference chain. Production chain sync, mempool
// admission, and contract execution are explicit Non-goals of this
// repository — they are represented here by the node/chainview,
// node/mempool, and node/contractvm reference implementations, the same
// ones the mining package's own tests drive.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/sbtc-core/sbtcd/corelog"
	"github.com/sbtc-core/sbtcd/node/chainview"
	"github.com/sbtc-core/sbtcd/node/contractvm"
	"github.com/sbtc-core/sbtcd/node/mempool"
	"github.com/sbtc-core/sbtcd/node/mining"
	"github.com/sbtc-core/sbtcd/sbtcutil"
)

// options bundles mining.Policy with the handful of driver-level flags
// that aren't themselves part of the assembler's configuration surface.
type options struct {
	mining.Policy
	Logging corelog.Config `yaml:"logging"`

	ConfigFile string `long:"configfile" description:"Path to a YAML file overlaying these flags"`
	PayToAddr  string `long:"paytoaddr" description:"20-byte hex pubkey hash to pay the coinbase subsidy to; 20 zero bytes if omitted"`
	LogLevel   string `long:"loglevel" default:"info" description:"Logging level: trace, debug, info, warn, error"`
}

// loadConfigFile overlays opts with the contents of its ConfigFile, the way
// the teacher's config.go decodes a ".yaml" config file over flag defaults.
func loadConfigFile(opts *options) error {
	if opts.ConfigFile == "" {
		return nil
	}
	f, err := os.Open(opts.ConfigFile)
	if err != nil {
		return errors.Wrap(err, "open config file")
	}
	defer f.Close()
	return yaml.NewDecoder(f).Decode(opts)
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	opts := options{Policy: mining.DefaultPolicy(), Logging: corelog.Config{}.Default()}
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			return nil
		}
		return err
	}
	if err := loadConfigFile(&opts); err != nil {
		return errors.Wrap(err, "load config file")
	}

	level, err := zerolog.ParseLevel(opts.LogLevel)
	if err != nil {
		return errors.Wrap(err, "invalid loglevel")
	}
	logger := corelog.New("sbtcd", level, opts.Logging)
	mining.UseLogger(logger)

	addr, err := payoutAddress(opts.PayToAddr)
	if err != nil {
		return errors.Wrap(err, "invalid paytoaddr")
	}

	chain := chainview.NewRefChain()
	pool := mempool.NewTxPool()
	engine := contractvm.NewRefEngine(contractvm.Cursor{})

	generator := mining.NewBlkTmplGenerator(opts.Policy, chain, pool, engine)

	tpl, err := generator.CreateNewBlock(addr, true)
	if err != nil {
		return errors.Wrap(err, "create new block")
	}

	logger.Info().
		Int32("height", tpl.Height).
		Int("tx_count", len(tpl.Block.Transactions)).
		Int64("weight", tpl.Block.Weight()).
		Msg("assembled block template")
	return nil
}

func payoutAddress(hexHash string) (sbtcutil.Address, error) {
	hash := make([]byte, 20)
	if hexHash != "" {
		decoded, err := decodeHex20(hexHash)
		if err != nil {
			return nil, err
		}
		hash = decoded
	}
	return sbtcutil.NewAddressPubKeyHash(hash)
}

func decodeHex20(s string) ([]byte, error) {
	b := make([]byte, 20)
	if len(s) != 40 {
		return nil, errors.New("expected 40 hex characters")
	}
	for i := 0; i < 20; i++ {
		hi, err := hexNibble(s[2*i])
		if err != nil {
			return nil, err
		}
		lo, err := hexNibble(s[2*i+1])
		if err != nil {
			return nil, err
		}
		b[i] = hi<<4 | lo
	}
	return b, nil
}

func hexNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.New("invalid hex character")
	}
}
