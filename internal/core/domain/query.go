package domain

// Field names understood by the storage read interface.
const (
	FieldFeatured  = "featured"
	FieldAvailable = "available"
	FieldCreatedAt = "createdAt"
	FieldRole      = "role"
)

type Direction int

const (
	Asc Direction = iota
	Desc
)

type (
	// A Query is a storage neutral read over a single collection.
	//
	// Predicates are joined with AND. Zero Limit means no cap.
	Query struct {
		Collection string
		Where      []Predicate
		OrderBy    *Order
		Limit      int
	}

	// A Predicate is an equality test.
	Predicate struct {
		Field string
		Value any
	}

	Order struct {
		Field     string
		Direction Direction
	}
)

// Eq makes an equality [Predicate].
func Eq(field string, value any) Predicate {
	return Predicate{Field: field, Value: value}
}
