package snowflake

import (
	"strconv"
	"time"

	"github.com/hatchify/errors"
)

const (
	// ErrInvalidID is returned when a value cannot be parsed as a snowflake ID
	ErrInvalidID = errors.Error("invalid snowflake ID, expected an unsigned 64-bit integer")
)

const (
	// Epoch is the first millisecond of 2015 (UTC) in unix milliseconds, the zero point of the timestamp bits
	Epoch int64 = 1420070400000

	timestampShift = 22
	workerShift    = 17
	processShift   = 12

	workerMask    = 0x3E0000
	processMask   = 0x1F000
	incrementMask = 0xFFF

	// maxTimestamp is the largest millisecond offset which fits the 42 timestamp bits
	maxTimestamp = 1<<(64-timestampShift) - 1
)

// Zero is the zero ID. As an anchor it represents the most recent entity
const Zero ID = 0

// Parse will parse a base 10 string as an ID
func Parse(str string) (id ID, err error) {
	var u64 uint64
	if u64, err = strconv.ParseUint(str, 10, 64); err != nil {
		err = ErrInvalidID
		return
	}

	id = ID(u64)
	return
}

// FromTime will return the smallest ID which could have been created at the provided time
// Note: Times before the Epoch are clamped to Zero, times beyond the timestamp
// range (around the year 2154) are clamped to the last representable millisecond
func FromTime(t time.Time) (id ID) {
	ms := t.UnixMilli() - Epoch
	if ms <= 0 {
		return Zero
	}

	if ms > maxTimestamp {
		ms = maxTimestamp
	}

	return ID(uint64(ms) << timestampShift)
}

// ID represents a 64-bit snowflake identifier. IDs are ordered by their unsigned value
type ID uint64

// Timestamp will return the creation time of the ID in unix milliseconds
func (id ID) Timestamp() (ms int64) {
	return int64(uint64(id)>>timestampShift) + Epoch
}

// Time will return the creation time of the ID
func (id ID) Time() time.Time {
	return time.UnixMilli(id.Timestamp()).UTC()
}

// Worker will return the internal worker ID bits
func (id ID) Worker() uint8 {
	return uint8((uint64(id) & workerMask) >> workerShift)
}

// Process will return the internal process ID bits
func (id ID) Process() uint8 {
	return uint8((uint64(id) & processMask) >> processShift)
}

// Increment will return the per-process increment bits
func (id ID) Increment() uint16 {
	return uint16(uint64(id) & incrementMask)
}

// IsZero will return whether or not the ID is the Zero anchor
func (id ID) IsZero() bool {
	return id == Zero
}

// Before will return whether or not the ID is older than the provided ID
func (id ID) Before(other ID) bool {
	return Compare(id, other) < 0
}

// After will return whether or not the ID is newer than the provided ID
func (id ID) After(other ID) bool {
	return Compare(id, other) > 0
}

// String will return the base 10 representation of the ID
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// MarshalJSON will encode the ID as a JSON string, IDs exceed the safe integer range of most JSON decoders
func (id ID) MarshalJSON() (bs []byte, err error) {
	bs = make([]byte, 0, 22)
	bs = append(bs, '"')
	bs = strconv.AppendUint(bs, uint64(id), 10)
	bs = append(bs, '"')
	return
}

// UnmarshalJSON will decode an ID from either a JSON string or a JSON number
func (id *ID) UnmarshalJSON(bs []byte) (err error) {
	str := string(bs)
	if str == "null" {
		return
	}

	if len(str) >= 2 && str[0] == '"' && str[len(str)-1] == '"' {
		str = str[1 : len(str)-1]
	}

	var parsed ID
	if parsed, err = Parse(str); err != nil {
		return
	}

	*id = parsed
	return
}
