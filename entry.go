package pager

import "github.com/mojura/pager/snowflake"

// Entity represents a paginated entity
type Entity interface {
	GetID() snowflake.ID
}

// Entry is a base entry type for paginated entities. This struct can be
// included to decrease the time of initial integration
type Entry struct {
	// Entry ID
	ID snowflake.ID `json:"id"`
}

// GetID will get the entry ID
func (e *Entry) GetID() (id snowflake.ID) {
	return e.ID
}

// SetID will set the entry ID
func (e *Entry) SetID(id snowflake.ID) {
	e.ID = id
}

// CreatedAt will return the creation time encoded in the entry ID
func (e *Entry) CreatedAt() (createdAt int64) {
	return e.ID.Timestamp()
}
