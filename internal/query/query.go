// Package query projects sub-documents out of JSON-RPC envelopes with
// jq filters evaluated in-process by gojq.
package query

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"
)

// Filters used by the operations.
const (
	Result         = ".result"
	BlockTxsNewest = ".result | .tx | reverse[]"
	PeerAddrs      = ".result[].addr"
	ResultLength   = ".result | length"
)

// ErrProjection means a filter could not be compiled or failed on its input.
var ErrProjection = errors.New("projection failed")

// Projection holds every value a filter emitted, in order.
type Projection struct {
	Filter string
	Values []any
}

// Project decodes body and runs filter over it.
func Project(body []byte, filter string) (*Projection, error) {
	var input any
	if err := json.Unmarshal(body, &input); err != nil {
		return nil, fmt.Errorf("%w: response is not JSON: %v", ErrProjection, err)
	}
	return ProjectValue(input, filter)
}

// ProjectValue runs filter over an already decoded document.
func ProjectValue(input any, filter string) (*Projection, error) {
	q, err := gojq.Parse(filter)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %q: %v", ErrProjection, filter, err)
	}
	code, err := gojq.Compile(q)
	if err != nil {
		return nil, fmt.Errorf("%w: compile %q: %v", ErrProjection, filter, err)
	}

	p := &Projection{Filter: filter}
	iter := code.Run(input)
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, isErr := v.(error); isErr {
			return nil, fmt.Errorf("%w: %q: %v", ErrProjection, filter, err)
		}
		p.Values = append(p.Values, v)
	}
	return p, nil
}

// Len is the number of emitted values.
func (p *Projection) Len() int {
	return len(p.Values)
}

// Single returns the one emitted value re-encoded as JSON. A filter that
// emitted nothing, several values, or null is an error.
func (p *Projection) Single() ([]byte, error) {
	if len(p.Values) != 1 {
		return nil, fmt.Errorf("%w: %q produced %d values, want 1", ErrProjection, p.Filter, len(p.Values))
	}
	if p.Values[0] == nil {
		return nil, fmt.Errorf("%w: %q produced null", ErrProjection, p.Filter)
	}
	b, err := json.Marshal(p.Values[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrProjection, err)
	}
	return b, nil
}

// Int returns the single emitted value as an integer, for filters such as
// ResultLength.
func (p *Projection) Int() (int, error) {
	if len(p.Values) != 1 {
		return 0, fmt.Errorf("%w: %q produced %d values, want 1", ErrProjection, p.Filter, len(p.Values))
	}
	switch v := p.Values[0].(type) {
	case int:
		return v, nil
	case float64:
		if v == float64(int(v)) {
			return int(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %q produced %v, want an integer", ErrProjection, p.Filter, p.Values[0])
}

// Pretty renders each value as indented JSON on its own line, the way jq
// prints to a terminal.
func (p *Projection) Pretty() string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	for _, v := range p.Values {
		if err := enc.Encode(v); err != nil {
			fmt.Fprintf(&buf, "%v\n", v)
		}
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
