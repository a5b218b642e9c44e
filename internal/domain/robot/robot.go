// Package robot holds the persisted Robot entity and the ordering criteria the
// entity store understands.
package robot

// Robot is the in-process representation of one durable robot row.
// ID is nil until the store assigns it on the first insert and never changes
// afterwards.
type Robot struct {
	ID   *int64
	Name string
}

// Equal reports whether r and other denote the same row. Only IDs are
// compared; Name is ignored. A Robot without an ID is equal only to itself.
func (r *Robot) Equal(other *Robot) bool {
	if r == other {
		return true
	}
	if r == nil || other == nil || r.ID == nil || other.ID == nil {
		return false
	}
	return *r.ID == *other.ID
}

// HasID reports whether the store has assigned an identifier.
func (r *Robot) HasID() bool {
	return r != nil && r.ID != nil
}
