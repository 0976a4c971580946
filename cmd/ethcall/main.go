package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/indexsupply/ethcall/abi"
	"github.com/indexsupply/ethcall/callfmt"
	"github.com/indexsupply/ethcall/eth"
	"github.com/indexsupply/ethcall/isxerrors"
	"github.com/indexsupply/ethcall/jrpc"
	"github.com/indexsupply/ethcall/tracing"
	"github.com/indexsupply/ethcall/wctx"
	"github.com/indexsupply/ethcall/wslog"

	"github.com/goccy/go-json"
	"github.com/sethvargo/go-envconfig"
)

func check(err error) {
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}

func hexflag(s string) []byte {
	if s == "" {
		return nil
	}
	b, err := eth.DecodeHex(s)
	check(err)
	return b
}

func main() {
	var (
		ctx   = context.Background()
		cfile string

		method  string
		url     string
		from    string
		to      string
		sig     string
		input   string
		hash    string
		block   string
		chain   uint64
		number  string
		bytes   string
		lossy   bool
		timeout time.Duration
		version bool
		verbose bool
	)
	flag.StringVar(&cfile, "config", "", "json config file")
	flag.StringVar(&method, "m", "call", "call, block, chain, balance, tx, or receipt")
	flag.StringVar(&url, "url", "", "json rpc url. overrides ETHCALL_URL")
	flag.StringVar(&from, "from", "", "call sender address")
	flag.StringVar(&to, "to", "", "contract (call) or account (balance) address")
	flag.StringVar(&sig, "sig", "", "function signature. eg: retrieve()")
	flag.StringVar(&input, "input", "", "hex encoded call data. overrides -sig")
	flag.StringVar(&hash, "hash", "", "transaction hash for tx and receipt")
	flag.StringVar(&block, "block", "latest", "block tag or hex number")
	flag.Uint64Var(&chain, "chain", 0, "chain id for logs and traces. overrides ETHCALL_CHAIN")
	flag.StringVar(&number, "number", "", "HEX, STR, BIGINT, NUMBER, or U256")
	flag.StringVar(&bytes, "bytes", "", "HEX, BUFFER, or UINT8ARRAY")
	flag.BoolVar(&lossy, "lossy", false, "truncate numbers that don't fit NUMBER or U256")
	flag.DurationVar(&timeout, "timeout", 30*time.Second, "request timeout")
	flag.BoolVar(&version, "version", false, "version")
	flag.BoolVar(&verbose, "v", false, "verbose logging")
	flag.Parse()

	logLevel := new(slog.LevelVar)
	logLevel.Set(slog.LevelInfo)
	if verbose {
		logLevel.Set(slog.LevelDebug)
	}
	lh := wslog.New(os.Stderr, &slog.HandlerOptions{Level: logLevel})
	lh.Context("m", wctx.Method)
	lh.Context("id", wctx.ReqID)
	lh.RegisterContext(func(ctx context.Context) (string, any) {
		id := wctx.ChainID(ctx)
		if id == 0 {
			return "", nil
		}
		return "chain", id
	})
	slog.SetDefault(slog.New(lh.WithAttrs([]slog.Attr{
		slog.String("v", Commit),
	})))
	ctx = wctx.WithVersion(ctx, Commit)

	if version {
		fmt.Printf("v%s %s\n", Version, Commit)
		os.Exit(0)
	}

	conf, err := load(ctx, envconfig.OsLookuper(), cfile)
	check(err)
	conf, err = applyFlags(conf, flag.CommandLine)
	check(err)
	if conf.chain != 0 {
		ctx = wctx.WithChainID(ctx, conf.chain)
	}
	slog.DebugContext(ctx, "config", "url", conf.url, "format", conf.format)

	tcfg, err := tracing.ConfigFromEnv(ctx)
	check(err)
	if tcfg.ServiceVersion == "unknown" {
		tcfg.ServiceVersion = Commit
	}
	shutdown, err := tracing.Init(ctx, tcfg)
	check(err)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	rc := jrpc.New(conf.url)
	req := request{
		from:  conf.from,
		gas:   conf.gas,
		to:    hexflag(to),
		sig:   sig,
		input: hexflag(input),
		hash:  hexflag(hash),
		block: block,
	}
	v, err := run(ctx, rc, method, conf.format, req)
	cancel()
	check(isxerrors.Errorf("closing rpc client: %w", rc.Close()))
	check(isxerrors.Errorf("flushing traces: %w", shutdown(context.Background())))
	check(err)

	out, err := json.MarshalIndent(v, "", "  ")
	check(err)
	fmt.Printf("%s\n", out)
}

type request struct {
	from, to, input, hash []byte
	gas                   uint64
	sig, block            string
}

type rpc interface {
	Call(context.Context, jrpc.CallMsg, string, callfmt.Config) (callfmt.Value, error)
	BlockNumber(context.Context, callfmt.Config) (callfmt.Value, error)
	ChainID(context.Context, callfmt.Config) (callfmt.Value, error)
	Balance(context.Context, []byte, string, callfmt.Config) (callfmt.Value, error)
	TransactionByHash(context.Context, []byte, callfmt.Config) (callfmt.Value, error)
	TransactionReceipt(context.Context, []byte, callfmt.Config) (callfmt.Value, error)
}

func run(ctx context.Context, rc rpc, method string, cf callfmt.Config, r request) (callfmt.Value, error) {
	switch method {
	case "call":
		if len(r.input) == 0 && r.sig != "" {
			s, err := abi.Selector(r.sig)
			if err != nil {
				return callfmt.Value{}, err
			}
			r.input = s[:]
		}
		if len(r.input) == 0 {
			return callfmt.Value{}, fmt.Errorf("call requires -sig or -input")
		}
		return rc.Call(ctx, jrpc.CallMsg{From: r.from, To: r.to, Input: r.input, Gas: r.gas}, r.block, cf)
	case "block":
		return rc.BlockNumber(ctx, cf)
	case "chain":
		return rc.ChainID(ctx, cf)
	case "balance":
		if len(r.to) == 0 {
			return callfmt.Value{}, fmt.Errorf("balance requires -to")
		}
		return rc.Balance(ctx, r.to, r.block, cf)
	case "tx", "receipt":
		if len(r.hash) != 32 {
			return callfmt.Value{}, fmt.Errorf("%s requires a 32 byte -hash", method)
		}
		if method == "tx" {
			return rc.TransactionByHash(ctx, r.hash, cf)
		}
		return rc.TransactionReceipt(ctx, r.hash, cf)
	default:
		return callfmt.Value{}, fmt.Errorf("unknown method %q", method)
	}
}

// Set using: go build -ldflags="-X main.Version=XXX"
var (
	Version string
	Commit  = func() string {
		bi, ok := debug.ReadBuildInfo()
		if !ok {
			return "ernobuildinfo"
		}
		return commit(bi.Settings)
	}()
)

// Short vcs revision with a - suffix for modified trees
func commit(settings []debug.BuildSetting) string {
	var (
		revision = ""
		modified bool
	)
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value[:min(4, len(s.Value))]
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if !modified {
		return revision
	}
	return revision + "-"
}
