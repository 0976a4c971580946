// JSON RPC client for read-only eth methods
package jrpc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/indexsupply/ethcall/callfmt"
	"github.com/indexsupply/ethcall/eth"
	"github.com/indexsupply/ethcall/wctx"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
	"github.com/klauspost/compress/gzhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"nhooyr.io/websocket"
)

var ErrNotFound = errors.New("not found")

var tracer = otel.Tracer("github.com/indexsupply/ethcall/jrpc")

// Requests go over http(s) or, when url has a ws(s)
// scheme, over a single lazily dialed websocket.
func New(url string) *Client {
	return &Client{
		d: strings.Contains(url, "debug"),
		hc: &http.Client{
			Timeout:   10 * time.Second,
			Transport: gzhttp.Transport(http.DefaultTransport),
		},
		url: url,
		ws:  strings.HasPrefix(url, "ws://") || strings.HasPrefix(url, "wss://"),
	}
}

type Client struct {
	d   bool
	hc  *http.Client
	url string

	ws   bool
	wsmu sync.Mutex
	wsc  *websocket.Conn
}

func (c *Client) WithHTTPClient(hc *http.Client) *Client {
	c.hc = hc
	return c
}

func (c *Client) debug(r io.Reader) io.Reader {
	if !c.d {
		return r
	}
	return io.TeeReader(r, os.Stdout)
}

type request struct {
	ID      string `json:"id"`
	Version string `json:"jsonrpc"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

type response struct {
	ID     string          `json:"id"`
	Error  Error           `json:"error"`
	Result json.RawMessage `json:"result"`
}

type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e Error) Exists() bool {
	return e.Code != 0
}

func (e Error) Error() string {
	if len(e.Data) > 0 {
		return fmt.Sprintf("code=%d msg=%s data=%s", e.Code, e.Message, e.Data)
	}
	return fmt.Sprintf("code=%d msg=%s", e.Code, e.Message)
}

func (c *Client) do(ctx context.Context, dest *response, req request) error {
	if c.ws {
		return c.dows(ctx, dest, req)
	}
	var (
		eg   errgroup.Group
		r, w = io.Pipe()
		resp *http.Response
	)
	eg.Go(func() error {
		defer w.Close()
		return json.NewEncoder(w).Encode(req)
	})
	eg.Go(func() error {
		req, err := http.NewRequestWithContext(ctx, "POST", c.url, c.debug(r))
		if err != nil {
			r.CloseWithError(err)
			return fmt.Errorf("unable to new request: %w", err)
		}
		req.Header.Add("content-type", "application/json")
		req.Header.Set("user-agent", userAgent(ctx))
		resp, err = c.hc.Do(req)
		if err != nil {
			r.CloseWithError(err)
			return fmt.Errorf("unable to do http request: %w", err)
		}
		return nil
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode/100 != 2 {
		b, _ := io.ReadAll(resp.Body)
		text := strings.Map(func(r rune) rune {
			if unicode.IsPrint(r) {
				return r
			}
			return -1
		}, string(b))
		const msg = "rpc http error: %d %.100s"
		return fmt.Errorf(msg, resp.StatusCode, text)
	}
	if err := json.NewDecoder(c.debug(resp.Body)).Decode(dest); err != nil {
		return fmt.Errorf("unable to json decode: %w", err)
	}
	return nil
}

func userAgent(ctx context.Context) string {
	if v := wctx.Version(ctx); v != "" {
		return "ethcall/" + v
	}
	return "ethcall"
}

// Sends method and returns the raw result.
// A json-rpc error object is returned as an Error
// wrapped with the method name.
func (c *Client) request(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	id := uuid.NewString()
	ctx = wctx.WithMethod(ctx, method)
	ctx = wctx.WithReqID(ctx, id)
	ctx, span := tracer.Start(ctx, "jrpc."+method, trace.WithSpanKind(trace.SpanKindClient))
	span.SetAttributes(
		attribute.String("rpc.method", method),
		attribute.String("rpc.jsonrpc.request_id", id),
	)
	if chain := wctx.ChainID(ctx); chain > 0 {
		span.SetAttributes(attribute.Int64("chain.id", int64(chain)))
	}
	defer span.End()

	m := start(method)
	res, err := c.request1(ctx, id, method, params)
	m.stop(err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		slog.DebugContext(ctx, "rpc error", "err", err)
		return nil, err
	}
	slog.DebugContext(ctx, "rpc", "n", len(res))
	return res, nil
}

func (c *Client) request1(ctx context.Context, id, method string, params []any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}
	resp := response{}
	err := c.do(ctx, &resp, request{
		ID:      id,
		Version: "2.0",
		Method:  method,
		Params:  params,
	})
	if err != nil {
		return nil, fmt.Errorf("rpc=%s %w", method, err)
	}
	if resp.Error.Exists() {
		return nil, fmt.Errorf("rpc=%s %w", method, resp.Error)
	}
	if resp.ID != id {
		return nil, fmt.Errorf("rpc=%s response id %q does not match request %q", method, resp.ID, id)
	}
	return resp.Result, nil
}

// Parameters of a read-only call.
// A nil To simulates contract creation.
type CallMsg struct {
	From  eth.Bytes
	To    eth.Bytes
	Input eth.Bytes
	Gas   uint64
	Value *uint256.Int
}

// Input is sent as both input and data
// since nodes disagree on the field name.
func (m CallMsg) MarshalJSON() ([]byte, error) {
	type callJSON struct {
		From  eth.Bytes   `json:"from,omitempty"`
		To    eth.Bytes   `json:"to,omitempty"`
		Input eth.Bytes   `json:"input,omitempty"`
		Data  eth.Bytes   `json:"data,omitempty"`
		Gas   *eth.Uint64 `json:"gas,omitempty"`
		Value string      `json:"value,omitempty"`
	}
	cj := callJSON{From: m.From, To: m.To, Input: m.Input, Data: m.Input}
	if m.Gas > 0 {
		g := eth.Uint64(m.Gas)
		cj.Gas = &g
	}
	if m.Value != nil {
		cj.Value = m.Value.Hex()
	}
	return json.Marshal(cj)
}

// Calls a contract method using eth_call and returns the
// result formatted according to cf. The request itself
// is sent as given: cf never alters To or Input.
// An empty block means "latest".
func (c *Client) Call(ctx context.Context, msg CallMsg, block string, cf callfmt.Config) (callfmt.Value, error) {
	if err := cf.Validate(); err != nil {
		return callfmt.Value{}, err
	}
	if block == "" {
		block = "latest"
	}
	res, err := c.request(ctx, "eth_call", msg, block)
	if err != nil {
		return callfmt.Value{}, err
	}
	if len(res) == 0 || string(res) == "null" {
		return callfmt.Value{}, fmt.Errorf("rpc=eth_call %w: null result", callfmt.ErrUnexpectedType)
	}
	v, err := callfmt.Unmarshal(callfmt.CallResult, res, cf)
	if err != nil {
		return callfmt.Value{}, fmt.Errorf("formatting eth_call result: %w", err)
	}
	return v, nil
}

func (c *Client) BlockNumber(ctx context.Context, cf callfmt.Config) (callfmt.Value, error) {
	return c.get(ctx, callfmt.Quantity, cf, "eth_blockNumber")
}

func (c *Client) ChainID(ctx context.Context, cf callfmt.Config) (callfmt.Value, error) {
	return c.get(ctx, callfmt.Quantity, cf, "eth_chainId")
}

func (c *Client) Balance(ctx context.Context, addr []byte, block string, cf callfmt.Config) (callfmt.Value, error) {
	if block == "" {
		block = "latest"
	}
	return c.get(ctx, callfmt.Quantity, cf, "eth_getBalance", eth.EncodeHex(addr), block)
}

// Returns ErrNotFound when the node doesn't know the hash.
func (c *Client) TransactionByHash(ctx context.Context, hash []byte, cf callfmt.Config) (callfmt.Value, error) {
	return c.get(ctx, callfmt.Transaction, cf, "eth_getTransactionByHash", eth.EncodeHex(hash))
}

// Returns ErrNotFound when the node doesn't know the hash.
func (c *Client) TransactionReceipt(ctx context.Context, hash []byte, cf callfmt.Config) (callfmt.Value, error) {
	return c.get(ctx, callfmt.Receipt, cf, "eth_getTransactionReceipt", eth.EncodeHex(hash))
}

func (c *Client) get(ctx context.Context, t callfmt.Type, cf callfmt.Config, method string, params ...any) (callfmt.Value, error) {
	if err := cf.Validate(); err != nil {
		return callfmt.Value{}, err
	}
	res, err := c.request(ctx, method, params...)
	if err != nil {
		return callfmt.Value{}, err
	}
	if len(res) == 0 || string(res) == "null" {
		return callfmt.Value{}, fmt.Errorf("rpc=%s %w", method, ErrNotFound)
	}
	v, err := callfmt.Unmarshal(t, res, cf)
	if err != nil {
		return callfmt.Value{}, fmt.Errorf("formatting %s result: %w", method, err)
	}
	return v, nil
}
