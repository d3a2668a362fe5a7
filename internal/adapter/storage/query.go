package storage

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/niksmo/storefront/internal/core/domain"
)

var (
	ErrUnknownCollection = errors.New("unknown collection")
	ErrUnknownField      = errors.New("unknown field")
	ErrInvalidValue      = errors.New("invalid predicate value")
)

type valueKind int

const (
	boolValue valueKind = iota
	stringValue
	timeValue
)

type column struct {
	name string
	kind valueKind
}

// A collection maps query fields of a collection onto table columns.
type collection struct {
	name    string
	table   string
	columns []string
	fields  map[string]column
}

// selectQuery translates q into a parameterised SELECT.
func (c collection) selectQuery(q domain.Query) (string, []any, error) {
	if q.Collection != c.name {
		return "", nil, fmt.Errorf("%w: %q", ErrUnknownCollection, q.Collection)
	}

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(strings.Join(c.columns, ", "))
	b.WriteString(" FROM ")
	b.WriteString(c.table)

	var (
		where []string
		args  []any
	)
	for _, p := range q.Where {
		col, ok := c.fields[p.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", ErrUnknownField, p.Field)
		}
		if !col.accepts(p.Value) {
			return "", nil, fmt.Errorf(
				"%w: %s=%v (%T)", ErrInvalidValue, p.Field, p.Value, p.Value,
			)
		}
		args = append(args, p.Value)
		where = append(where, col.name+" = $"+strconv.Itoa(len(args)))
	}
	if len(where) != 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(where, " AND "))
	}

	if q.OrderBy != nil {
		col, ok := c.fields[q.OrderBy.Field]
		if !ok {
			return "", nil, fmt.Errorf("%w: %q", ErrUnknownField, q.OrderBy.Field)
		}
		dir := "ASC NULLS LAST"
		if q.OrderBy.Direction == domain.Desc {
			dir = "DESC NULLS LAST"
		}
		b.WriteString(" ORDER BY " + col.name + " " + dir + ", id ASC")
	}

	if q.Limit > 0 {
		args = append(args, q.Limit)
		b.WriteString(" LIMIT $" + strconv.Itoa(len(args)))
	}

	return b.String(), args, nil
}

func (c column) accepts(v any) bool {
	switch c.kind {
	case boolValue:
		_, ok := v.(bool)
		return ok
	case stringValue:
		_, ok := v.(string)
		return ok
	default:
		return false
	}
}

// toTimestamp keeps absent and infinite values distinguishable for
// the normalizer.
func toTimestamp(v pgtype.Timestamptz) domain.Timestamp {
	if !v.Valid {
		return domain.Timestamp{}
	}
	switch v.InfinityModifier {
	case pgtype.Infinity:
		return domain.Timestamp{Seconds: math.MaxInt64, Valid: true}
	case pgtype.NegativeInfinity:
		return domain.Timestamp{Seconds: math.MinInt64, Valid: true}
	}
	return domain.NewTimestamp(v.Time)
}
