package robot

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/jsamuelsen11/robot-service/internal/domain"
)

// Field names a sortable robot column.
type Field string

const (
	FieldID   Field = "id"
	FieldName Field = "name"
)

// IsValid returns true if the field is one of the defined constants.
func (f Field) IsValid() bool {
	switch f {
	case FieldID, FieldName:
		return true
	default:
		return false
	}
}

// Direction is the ordering applied to a Field.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Order is a single "field,direction" sort criterion.
type Order struct {
	Field     Field
	Direction Direction
}

// Descending reports whether the order is reversed.
func (o Order) Descending() bool {
	return o.Direction == Desc
}

// Sort is an ordered list of criteria, most significant first.
// The zero value means "whatever order the store returns".
type Sort []Order

// IsZero reports whether no ordering was requested.
func (s Sort) IsZero() bool {
	return len(s) == 0
}

// Compare orders a before b under s, breaking ties by ID. Robots without an
// ID sort first. Used by stores that order rows in memory.
func (s Sort) Compare(a, b Robot) int {
	for _, o := range s {
		var c int
		switch o.Field {
		case FieldID:
			c = compareID(a.ID, b.ID)
		case FieldName:
			c = strings.Compare(a.Name, b.Name)
		}
		if o.Descending() {
			c = -c
		}
		if c != 0 {
			return c
		}
	}
	return compareID(a.ID, b.ID)
}

// Apply sorts robots in place according to s.
func (s Sort) Apply(robots []Robot) {
	slices.SortStableFunc(robots, s.Compare)
}

func compareID(a, b *int64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	default:
		return cmp.Compare(*a, *b)
	}
}

// ParseSort parses "field[,direction]" expressions such as "id,desc".
// The direction defaults to ascending. Empty expressions are skipped.
// Returns a *domain.ValidationError for unknown fields or directions.
func ParseSort(exprs []string) (Sort, error) {
	var s Sort
	for _, expr := range exprs {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}

		name, dir, _ := strings.Cut(expr, ",")
		o := Order{
			Field:     Field(strings.ToLower(strings.TrimSpace(name))),
			Direction: Asc,
		}
		if d := strings.ToLower(strings.TrimSpace(dir)); d != "" {
			o.Direction = Direction(d)
		}

		if !o.Field.IsValid() {
			return nil, &domain.ValidationError{
				Fields: map[string]string{"sort": fmt.Sprintf("unknown field %q", name)},
			}
		}
		if o.Direction != Asc && o.Direction != Desc {
			return nil, &domain.ValidationError{
				Fields: map[string]string{"sort": fmt.Sprintf("direction must be asc or desc, got %q", dir)},
			}
		}
		s = append(s, o)
	}
	return s, nil
}
