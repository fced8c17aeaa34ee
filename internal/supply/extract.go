package supply

import (
	"errors"
	"fmt"

	"github.com/dmagro/zechub-cli/internal/slog"
)

// Pool identifiers every supply response must carry.
const (
	PoolTransparent = "transparent"
	PoolSprout      = "sprout"
	PoolSapling     = "sapling"
	PoolOrchard     = "orchard"
	PoolLockbox     = "lockbox"
)

// RequiredPools is the canonical pool order.
var RequiredPools = []string{PoolTransparent, PoolSprout, PoolSapling, PoolOrchard, PoolLockbox}

// ErrPoolIndexOutOfRange means the pool list is too short or lacks a
// required pool.
var ErrPoolIndexOutOfRange = errors.New("value pool out of range")

// MissingPoolError names the required pool that was not found.
type MissingPoolError struct {
	ID string
}

func (e *MissingPoolError) Error() string {
	return fmt.Sprintf("%v: pool %q not present", ErrPoolIndexOutOfRange, e.ID)
}

// Is makes a MissingPoolError match ErrPoolIndexOutOfRange.
func (e *MissingPoolError) Is(target error) bool {
	return target == ErrPoolIndexOutOfRange
}

// PoolValues holds the chain value of each required pool.
type PoolValues struct {
	Transparent float64 `json:"transparent" csv:"transparent"`
	Sprout      float64 `json:"sprout" csv:"sprout"`
	Sapling     float64 `json:"sapling" csv:"sapling"`
	Orchard     float64 `json:"orchard" csv:"orchard"`
	Lockbox     float64 `json:"lockbox" csv:"lockbox"`
}

// ChainSupply is the chain-wide supply breakdown.
type ChainSupply struct {
	Chain      string  `json:"chain" csv:"chain"`
	Height     uint64  `json:"height" csv:"height"`
	SizeOnDisk uint64  `json:"size_on_disk" csv:"size_on_disk"`
	Total      float64 `json:"total" csv:"total"`
	PoolValues
	Shielded float64 `json:"shielded" csv:"shielded"`
}

// BlockSupply is the pool breakdown at one block.
type BlockSupply struct {
	Height uint64 `json:"height" csv:"height"`
	PoolValues
}

// ExtractChainSupply derives pool totals and the shielded supply, which is
// total minus the transparent and lockbox pools.
func ExtractChainSupply(info *ChainInfo) (ChainSupply, error) {
	pools, err := lookupPools(info.ValuePools)
	if err != nil {
		return ChainSupply{}, err
	}

	total := info.ChainSupply.ChainValue
	return ChainSupply{
		Chain:      info.Chain,
		Height:     info.Blocks,
		SizeOnDisk: info.SizeOnDisk,
		Total:      total,
		PoolValues: pools,
		Shielded:   total - pools.Transparent - pools.Lockbox,
	}, nil
}

// ExtractBlockSupply returns the pool values recorded at a block.
func ExtractBlockSupply(info *BlockSupplyInfo) (BlockSupply, error) {
	pools, err := lookupPools(info.ValuePools)
	if err != nil {
		return BlockSupply{}, err
	}
	return BlockSupply{Height: info.Height, PoolValues: pools}, nil
}

func lookupPools(pools []Pool) (PoolValues, error) {
	if len(pools) < len(RequiredPools) {
		return PoolValues{}, fmt.Errorf("%w: got %d pools, want %d", ErrPoolIndexOutOfRange, len(pools), len(RequiredPools))
	}

	byID := make(map[string]float64, len(pools))
	for _, p := range pools {
		if _, dup := byID[p.ID]; dup {
			return PoolValues{}, fmt.Errorf("%w: duplicate value pool %q", ErrShapeMismatch, p.ID)
		}
		byID[p.ID] = p.ChainValue
	}

	get := func(id string) (float64, error) {
		v, ok := byID[id]
		if !ok {
			return 0, &MissingPoolError{ID: id}
		}
		delete(byID, id)
		return v, nil
	}

	var out PoolValues
	var err error
	if out.Transparent, err = get(PoolTransparent); err != nil {
		return PoolValues{}, err
	}
	if out.Sprout, err = get(PoolSprout); err != nil {
		return PoolValues{}, err
	}
	if out.Sapling, err = get(PoolSapling); err != nil {
		return PoolValues{}, err
	}
	if out.Orchard, err = get(PoolOrchard); err != nil {
		return PoolValues{}, err
	}
	if out.Lockbox, err = get(PoolLockbox); err != nil {
		return PoolValues{}, err
	}

	for id := range byID {
		slog.Get().Debugf("ignoring unrecognized value pool %q", id)
	}
	return out, nil
}
