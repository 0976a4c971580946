package jrpc

import (
	"context"
	"fmt"
	"log/slog"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// One request in flight per connection.
// Messages with a different id (subscription
// notifications, stale responses) are skipped.
func (c *Client) dows(ctx context.Context, dest *response, req request) error {
	c.wsmu.Lock()
	defer c.wsmu.Unlock()

	if c.wsc == nil {
		wsc, _, err := websocket.Dial(ctx, c.url, nil)
		if err != nil {
			return fmt.Errorf("ws dial %q: %w", c.url, err)
		}
		wsc.SetReadLimit(32 << 20)
		c.wsc = wsc
	}
	if err := wsjson.Write(ctx, c.wsc, req); err != nil {
		c.reset()
		return fmt.Errorf("ws write %q: %w", c.url, err)
	}
	for {
		*dest = response{}
		if err := wsjson.Read(ctx, c.wsc, dest); err != nil {
			c.reset()
			return fmt.Errorf("ws read %q: %w", c.url, err)
		}
		if dest.ID == req.ID {
			return nil
		}
		// parse and invalid request errors have a null id
		if dest.ID == "" && dest.Error.Exists() {
			return nil
		}
		slog.DebugContext(ctx, "ws skipping message", "id", dest.ID)
	}
}

// must hold wsmu
func (c *Client) reset() {
	if c.wsc == nil {
		return
	}
	c.wsc.Close(websocket.StatusGoingAway, "reset")
	c.wsc = nil
}

// Closes the websocket connection, if any.
// The Client remains usable: the next request redials.
func (c *Client) Close() error {
	c.wsmu.Lock()
	defer c.wsmu.Unlock()
	if c.wsc == nil {
		return nil
	}
	err := c.wsc.Close(websocket.StatusNormalClosure, "")
	c.wsc = nil
	return err
}
