package checkpoint

import (
	"github.com/mojura/enkodo"

	"github.com/mojura/pager/snowflake"
)

// Checkpoint represents the resumable position of a pager
type Checkpoint struct {
	// Anchor of the pager at the time of the checkpoint
	Anchor snowflake.ID
	// Direction of the pager walk
	Direction uint8
	// Unix timestamp of the checkpoint creation
	UpdatedAt int64
}

// MarshalEnkodo is a enkodo encoding helper func
func (c *Checkpoint) MarshalEnkodo(enc *enkodo.Encoder) (err error) {
	// Write anchor as uint64
	if err = enc.Uint64(uint64(c.Anchor)); err != nil {
		return
	}

	// Write direction as uint8
	if err = enc.Uint8(c.Direction); err != nil {
		return
	}

	// Write updated at as int64
	if err = enc.Int64(c.UpdatedAt); err != nil {
		return
	}

	return
}

// UnmarshalEnkodo is a enkodo decoding helper func
func (c *Checkpoint) UnmarshalEnkodo(dec *enkodo.Decoder) (err error) {
	var u64 uint64

	// Decode uint64 value
	if u64, err = dec.Uint64(); err != nil {
		return
	}

	// Convert uint64 value to anchor
	c.Anchor = snowflake.ID(u64)

	// Decode direction as uint8
	if c.Direction, err = dec.Uint8(); err != nil {
		return
	}

	// Decode updated at as int64
	if c.UpdatedAt, err = dec.Int64(); err != nil {
		return
	}

	return
}
