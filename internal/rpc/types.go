// =============================================================================
// FILE: internal/rpc/types.go
// ROLE: Wire vocabulary, the JSON-RPC 1.0 envelope spoken by the node
// =============================================================================
//
// SYSTEM CONTEXT
// ==============
// Zebra (and zcashd before it) inherits Bitcoin Core's JSON-RPC dialect:
// version tag "1.0", an opaque string id, and an envelope that always carries
// all three of result / error / id. This file defines the Go shapes for that
// exchange and nothing else; typed domain records live in internal/supply and
// internal/chain.
//
//   commands ──▶ rpc.Client.Call ──▶ Envelope{StatusCode, Body}
//                                         │
//                                         ▼
//                               query.Project(Body, ".result")
//                                         │
//                                         ▼
//                          supply / chain decoders (strict shapes)
//
// The Envelope deliberately keeps the raw body. The transport does not
// interpret it: a non-2xx status or a populated "error" member is handed back
// untouched, and the caller decides what to show.
// =============================================================================

package rpc

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Protocol constants.
const (
	Version   = "1.0"
	RequestID = "zechub"

	// CookieUsername is the identity a node expects alongside a cookie secret.
	CookieUsername = "__cookie__"
)

// Request is a single JSON-RPC 1.0 call.
//
//	{"jsonrpc":"1.0","id":"zechub","method":"getblock","params":["000000...",1]}
type Request struct {
	JSONRPC string `json:"jsonrpc"`
	ID      string `json:"id"`
	Method  string `json:"method"`
	Params  []any  `json:"params"`
}

// NewRequest builds a request for method. Nil params serialize as [].
func NewRequest(method string, params ...any) Request {
	if params == nil {
		params = []any{}
	}
	return Request{
		JSONRPC: Version,
		ID:      RequestID,
		Method:  method,
		Params:  params,
	}
}

// Credentials is the Basic-auth identity/secret pair.
type Credentials struct {
	Username string
	Password string
}

// Connection holds everything needed to reach the node. It is built once
// after credential resolution and never mutated.
type Connection struct {
	Credentials
	URL  string // scheme and host, e.g. http://127.0.0.1
	Port int
}

// Address is the host:port form shown to the operator.
func (c Connection) Address() string {
	return strings.TrimSuffix(c.URL, "/") + ":" + strconv.Itoa(c.Port)
}

// Endpoint is the URL requests are POSTed to.
func (c Connection) Endpoint() string {
	return c.Address() + "/"
}

// Envelope is the raw HTTP outcome of one call. Body is the complete
// {result, error, id} document, not the result member.
type Envelope struct {
	Method     string
	StatusCode int
	Body       []byte
}

// OK reports whether the HTTP status is 2xx.
func (e *Envelope) OK() bool {
	return e.StatusCode >= 200 && e.StatusCode < 300
}

// CheckStatus returns an ErrHTTPStatus error for non-2xx responses.
func (e *Envelope) CheckStatus() error {
	if e.OK() {
		return nil
	}
	return fmt.Errorf("%w: %s returned HTTP %d", ErrHTTPStatus, e.Method, e.StatusCode)
}

// RPCError is the node-reported error member.
type RPCError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("RPC error %d: %s", e.Code, e.Message)
}

// RPCError decodes the error member of the body, if any. It returns nil when
// the body is not JSON or the member is absent or null.
func (e *Envelope) RPCError() *RPCError {
	var doc struct {
		Error *RPCError `json:"error"`
	}
	if err := json.Unmarshal(e.Body, &doc); err != nil {
		return nil
	}
	return doc.Error
}
