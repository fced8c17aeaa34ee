package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/dmagro/zechub-cli/internal/slog"
)

// Client sends JSON-RPC calls to one node over a fixed Connection.
type Client struct {
	conn       Connection
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

// NewClient returns a client for conn. A zero timeout leaves the transport
// defaults in place.
func NewClient(conn Connection, timeout time.Duration) *Client {
	return &Client{
		conn:       conn,
		httpClient: &http.Client{Timeout: timeout},
		logger:     slog.Get(),
	}
}

// Connection returns the connection the client was built with.
func (c *Client) Connection() Connection { return c.conn }

// Call executes one JSON-RPC request. It makes exactly one attempt and does
// not look inside the body: HTTP status and any RPC error member are left to
// the caller.
func (c *Client) Call(ctx context.Context, method string, params ...any) (*Envelope, error) {
	body, err := json.Marshal(NewRequest(method, params...))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	c.logger.Debugf("RPC request to %s: %s", c.conn.Address(), body)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.conn.Endpoint(), bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTransport, method, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.conn.Username, c.conn.Password)

	start := time.Now()
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.logger.Errorf("RPC request %s failed: %v", method, err)
		return nil, fmt.Errorf("%w: %s: %v", ErrTransport, method, err)
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s response: %v", ErrTransport, method, err)
	}

	c.logger.Debugw("RPC request completed",
		"method", method,
		"status", httpResp.StatusCode,
		"bytes", len(respBody),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	env := &Envelope{Method: method, StatusCode: httpResp.StatusCode, Body: respBody}
	if !env.OK() {
		c.logger.Warnf("%s returned HTTP %d", method, httpResp.StatusCode)
	}
	return env, nil
}

// Close releases idle keep-alive connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
