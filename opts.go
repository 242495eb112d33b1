package pager

import "github.com/mojura/pager/snowflake"

const (
	// DefaultName is the default name of a pager, used as the logging prefix
	DefaultName = "Pager"
	// DefaultMinLimit is the default inclusive minimum page size
	DefaultMinLimit = 1
	// DefaultMaxLimit is the default inclusive maximum page size
	DefaultMaxLimit = 100
	// DefaultLimit is the default page size
	DefaultLimit = DefaultMaxLimit
)

var defaultOpts = Opts{
	Name:     DefaultName,
	Limit:    DefaultLimit,
	MinLimit: DefaultMinLimit,
	MaxLimit: DefaultMaxLimit,
}

// MakeOpts will return the default options with the provided name
func MakeOpts(name string) (o Opts) {
	o = defaultOpts
	o.Name = name
	return
}

// Opts represent pager options
type Opts struct {
	// Name is used to prefix log output
	Name string `toml:"name" json:"name"`

	// Page size, MinLimit <= Limit <= MaxLimit
	Limit    int `toml:"limit" json:"limit"`
	MinLimit int `toml:"minLimit" json:"minLimit"`
	MaxLimit int `toml:"maxLimit" json:"maxLimit"`

	// Direction is the walk direction, defaults to Older
	Direction Direction `toml:"direction" json:"direction"`
	// Anchor is the initial anchor, zero starts at the newest (or oldest) entity
	Anchor snowflake.ID `toml:"anchor" json:"anchor"`

	// DisableCache will stop retrieved entities from being cached. Without a
	// cache, SkipTo accepts any anchor
	DisableCache bool `toml:"disableCache" json:"disableCache"`

	// Metrics are optional, defaults to NilMetrics
	Metrics *Metrics `toml:"-" json:"-"`
}

// Validate will fill unset values with defaults and ensure the options are valid
func (o *Opts) Validate() (err error) {
	if len(o.Name) == 0 {
		o.Name = DefaultName
	}

	if o.MinLimit == 0 {
		o.MinLimit = DefaultMinLimit
	}

	if o.MaxLimit == 0 {
		o.MaxLimit = DefaultMaxLimit
	}

	if o.Limit == 0 {
		o.Limit = o.MaxLimit
	}

	if o.MinLimit < 1 || o.MinLimit > o.MaxLimit {
		return ErrInvalidLimit
	}

	if err = o.validateLimit(o.Limit); err != nil {
		return
	}

	if err = o.Direction.Validate(); err != nil {
		return
	}

	if o.Metrics == nil {
		o.Metrics = NilMetrics()
	}

	return
}

func (o *Opts) validateLimit(limit int) (err error) {
	if limit < o.MinLimit || limit > o.MaxLimit {
		return ErrInvalidLimit
	}

	return
}
