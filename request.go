package pager

import (
	"net/url"
	"strconv"

	"github.com/mojura/pager/snowflake"
)

// Request represents the parameters of a single bounded fetch
type Request struct {
	// Anchor is exclusive, a zero anchor starts at the newest (or oldest) entity
	Anchor    snowflake.ID `json:"anchor"`
	Limit     int          `json:"limit"`
	Direction Direction    `json:"direction"`
}

// Query will return the request as query parameters, e.g. limit=100&before=175928847299117063
func (r *Request) Query() (q url.Values) {
	q = make(url.Values, 2)
	q.Set("limit", strconv.Itoa(r.Limit))
	if r.Anchor.IsZero() {
		// Zero anchors are implied by the absence of the parameter
		return
	}

	q.Set(r.Direction.QueryKey(), r.Anchor.String())
	return
}
