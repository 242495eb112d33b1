package pager

import (
	"fmt"

	"github.com/mojura/pager/snowflake"
)

const (
	// Older walks from the newest entity towards the oldest entity
	Older Direction = iota
	// Newer walks from the oldest entity towards the newest entity
	Newer
)

// Direction represents the walk direction of a Pager
type Direction uint8

// Validate will ensure a direction is valid
func (d Direction) Validate() (err error) {
	switch d {
	case Older:
	case Newer:

	default:
		// Currently set as an unsupported direction, return error
		return fmt.Errorf("%w, <%d> is not supported", ErrInvalidDirection, uint8(d))
	}

	return
}

// String will return the name of the direction
func (d Direction) String() string {
	switch d {
	case Older:
		return "older"
	case Newer:
		return "newer"

	default:
		// Current direction is not supported, return invalid
		return "invalid"
	}
}

// QueryKey will return the query parameter used to send an anchor for the direction
func (d Direction) QueryKey() string {
	if d == Newer {
		return "after"
	}

	return "before"
}

// isBeyond will determine if a is strictly further along the walk than b
func (d Direction) isBeyond(a, b snowflake.ID) (ok bool) {
	if d == Newer {
		// Current walk is oldest to newest, further along means newer
		return snowflake.Compare(a, b) > 0
	}

	// Current walk is newest to oldest, further along means older
	return snowflake.Compare(a, b) < 0
}
