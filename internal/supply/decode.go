// Package supply decodes chain and block value-pool records and derives the
// per-pool supply figures shown to the operator.
package supply

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrShapeMismatch means a projected result did not have the expected shape.
var ErrShapeMismatch = errors.New("response shape mismatch")

// ValueBalance is a supply figure plus whether the node tracks it.
type ValueBalance struct {
	ChainValue float64
	Monitored  bool
}

// Pool is one value-pool record.
type Pool struct {
	ID string
	ValueBalance
}

// ChainInfo is the subset of getblockchaininfo used for supply extraction.
type ChainInfo struct {
	Chain       string
	Blocks      uint64
	SizeOnDisk  uint64
	ChainSupply ValueBalance
	ValuePools  []Pool
}

// BlockSupplyInfo is the subset of getblock used for supply at one height.
type BlockSupplyInfo struct {
	Height     uint64
	ValuePools []Pool
}

// DecodeChainInfo strictly decodes the .result of getblockchaininfo.
func DecodeChainInfo(data []byte) (*ChainInfo, error) {
	obj, err := decodeObject(data, "chain info")
	if err != nil {
		return nil, err
	}

	var info ChainInfo
	var supply json.RawMessage
	var pools json.RawMessage
	if err := obj.take(&info.Chain, "chain"); err != nil {
		return nil, err
	}
	if err := obj.take(&info.Blocks, "blocks"); err != nil {
		return nil, err
	}
	if err := obj.take(&info.SizeOnDisk, "size_on_disk", "sizeOnDisk"); err != nil {
		return nil, err
	}
	if err := obj.take(&supply, "chain_supply", "chainSupply"); err != nil {
		return nil, err
	}
	if err := obj.take(&pools, "value_pools", "valuePools"); err != nil {
		return nil, err
	}

	if info.ChainSupply, err = decodeValueBalance(supply, "chain supply"); err != nil {
		return nil, err
	}
	if info.ValuePools, err = decodePools(pools); err != nil {
		return nil, err
	}
	return &info, nil
}

// DecodeBlockSupplyInfo strictly decodes the .result of a verbose getblock.
func DecodeBlockSupplyInfo(data []byte) (*BlockSupplyInfo, error) {
	obj, err := decodeObject(data, "block supply info")
	if err != nil {
		return nil, err
	}

	var info BlockSupplyInfo
	var pools json.RawMessage
	if err := obj.take(&info.Height, "height"); err != nil {
		return nil, err
	}
	if err := obj.take(&pools, "value_pools", "valuePools"); err != nil {
		return nil, err
	}
	if info.ValuePools, err = decodePools(pools); err != nil {
		return nil, err
	}
	return &info, nil
}

func decodeValueBalance(data json.RawMessage, what string) (ValueBalance, error) {
	var vb ValueBalance
	obj, err := decodeObject(data, what)
	if err != nil {
		return vb, err
	}
	if err := obj.take(&vb.ChainValue, "chain_value", "chainValue"); err != nil {
		return vb, err
	}
	if err := obj.take(&vb.Monitored, "monitored"); err != nil {
		return vb, err
	}
	return vb, nil
}

func decodePools(data json.RawMessage) ([]Pool, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: value pools: expected array: %v", ErrShapeMismatch, err)
	}

	pools := make([]Pool, 0, len(raw))
	for i, r := range raw {
		what := fmt.Sprintf("value pool %d", i)
		obj, err := decodeObject(r, what)
		if err != nil {
			return nil, err
		}
		var p Pool
		if err := obj.take(&p.ID, "id"); err != nil {
			return nil, err
		}
		if p.ValueBalance, err = decodeValueBalance(r, what); err != nil {
			return nil, err
		}
		pools = append(pools, p)
	}
	return pools, nil
}

// object is a JSON object whose members are decoded one at a time.
type object struct {
	what    string
	members map[string]json.RawMessage
}

func decodeObject(data []byte, what string) (*object, error) {
	if isNull(data) {
		return nil, fmt.Errorf("%w: %s: expected object, got null", ErrShapeMismatch, what)
	}
	var members map[string]json.RawMessage
	if err := json.Unmarshal(data, &members); err != nil {
		return nil, fmt.Errorf("%w: %s: expected object: %v", ErrShapeMismatch, what, err)
	}
	return &object{what: what, members: members}, nil
}

// take decodes the member stored under any one of keys into dst. Exactly one
// of the aliases must be present and non-null.
func (o *object) take(dst any, keys ...string) error {
	var found string
	var value json.RawMessage
	for _, k := range keys {
		v, ok := o.members[k]
		if !ok || isNull(v) {
			continue
		}
		if found != "" {
			return fmt.Errorf("%w: %s: duplicate field %q and %q", ErrShapeMismatch, o.what, found, k)
		}
		found, value = k, v
	}
	if found == "" {
		return fmt.Errorf("%w: %s: missing field %q", ErrShapeMismatch, o.what, strings.Join(keys, "|"))
	}

	if raw, ok := dst.(*json.RawMessage); ok {
		*raw = value
		return nil
	}
	if err := json.Unmarshal(value, dst); err != nil {
		return fmt.Errorf("%w: %s: field %q: %v", ErrShapeMismatch, o.what, found, err)
	}
	return nil
}

func isNull(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}
