package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/indexsupply/ethcall/callfmt"
	"github.com/indexsupply/ethcall/eth"
	"github.com/indexsupply/ethcall/wos"

	"github.com/goccy/go-json"
	"github.com/sethvargo/go-envconfig"
)

// Settings read from ETHCALL_* variables.
// A config file replaces any value it sets.
type env struct {
	URL    string               `env:"ETHCALL_URL, default=http://localhost:8545"`
	Chain  uint64               `env:"ETHCALL_CHAIN"`
	Number callfmt.NumberFormat `env:"ETHCALL_NUMBER, default=NUMBER_BIGINT"`
	Bytes  callfmt.BytesFormat  `env:"ETHCALL_BYTES, default=BYTES_HEX"`
	Lossy  bool                 `env:"ETHCALL_LOSSY, default=false"`
}

// The url may be a $VAR reference:
//
//	{
//		"url": "$MAINNET_RPC",
//		"chain": "0x1",
//		"from": "0xd8da6bf26964af9d7eed9e03e53415d37aa96045",
//		"gas": "0x5f5e100",
//		"format": {"number": "STR", "bytes": "UINT8ARRAY", "lossy": false}
//	}
type file struct {
	URL    wos.EnvString `json:"url"`
	Chain  eth.Uint64    `json:"chain"`
	From   eth.Bytes     `json:"from"`
	Gas    eth.Uint64    `json:"gas"`
	Format *struct {
		Number callfmt.NumberFormat `json:"number"`
		Bytes  callfmt.BytesFormat  `json:"bytes"`
		Lossy  *bool                `json:"lossy"`
	} `json:"format"`
}

type conf struct {
	url    string
	chain  uint64
	from   []byte
	gas    uint64
	format callfmt.Config
}

func load(ctx context.Context, l envconfig.Lookuper, cfile string) (conf, error) {
	var e env
	err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &e,
		Lookuper: l,
	})
	if err != nil {
		return conf{}, fmt.Errorf("loading env: %w", err)
	}
	c := conf{
		url:   e.URL,
		chain: e.Chain,
		format: callfmt.Config{
			Number: e.Number,
			Bytes:  e.Bytes,
			Lossy:  e.Lossy,
		},
	}
	if cfile == "" {
		return c, c.format.Validate()
	}
	b, err := os.ReadFile(cfile)
	if err != nil {
		return conf{}, fmt.Errorf("reading config: %w", err)
	}
	var f file
	if err := json.Unmarshal(b, &f); err != nil {
		return conf{}, fmt.Errorf("decoding config %s: %w", cfile, err)
	}
	if f.URL != "" {
		c.url = f.URL.String()
	}
	if f.Chain != 0 {
		c.chain = uint64(f.Chain)
	}
	c.from = f.From
	c.gas = uint64(f.Gas)
	if f.Format != nil {
		if f.Format.Number != 0 {
			c.format.Number = f.Format.Number
		}
		if f.Format.Bytes != 0 {
			c.format.Bytes = f.Format.Bytes
		}
		if f.Format.Lossy != nil {
			c.format.Lossy = *f.Format.Lossy
		}
	}
	return c, c.format.Validate()
}

// Flags explicitly set on the command line
// replace values from the env and config file.
func applyFlags(c conf, fs *flag.FlagSet) (conf, error) {
	var err error
	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		v := f.Value.String()
		switch f.Name {
		case "url":
			c.url = v
		case "chain":
			c.chain, err = strconv.ParseUint(v, 10, 64)
		case "from":
			c.from, err = eth.DecodeHex(v)
		case "number":
			c.format.Number, err = callfmt.ParseNumberFormat(v)
		case "bytes":
			c.format.Bytes, err = callfmt.ParseBytesFormat(v)
		case "lossy":
			c.format.Lossy, err = strconv.ParseBool(v)
		}
		if err != nil {
			err = fmt.Errorf("-%s: %w", f.Name, err)
		}
	})
	return c, err
}
