package service

import (
	"log/slog"
	"time"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Normalize converts a stored product record into a [domain.Product].
//
// Absent or unconvertible timestamps are replaced with now.
// It never fails, a record always yields a product.
func Normalize(rec domain.ProductRecord, now time.Time) domain.Product {
	p := domain.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		Slug:        rec.Slug,
		Description: rec.Description,
		BasePrice:   rec.BasePrice,
		Stock:       rec.Stock,
		CategoryID:  rec.CategoryID,
		Images:      rec.Images,
		Featured:    rec.Featured,
		Available:   rec.Available,
	}
	if rec.CategoryName != nil {
		p.CategoryName = *rec.CategoryName
	}

	p.CreatedAt = concreteTime(rec.CreatedAt, now, "createdAt", rec.ID)
	p.UpdatedAt = concreteTime(rec.UpdatedAt, now, "updatedAt", rec.ID)
	return p
}

// NormalizeAll normalizes every record, keeping order.
func NormalizeAll(recs []domain.ProductRecord, now time.Time) []domain.Product {
	if len(recs) == 0 {
		return nil
	}
	ps := make([]domain.Product, len(recs))
	for i, rec := range recs {
		ps[i] = Normalize(rec, now)
	}
	return ps
}

func NormalizeUser(rec domain.UserRecord, now time.Time) domain.User {
	u := domain.User{
		ID:    rec.ID,
		Email: rec.Email,
		Name:  rec.Name,
		Role:  rec.Role,
	}
	if rec.PhoneNumber != nil {
		u.PhoneNumber = *rec.PhoneNumber
	}
	u.CreatedAt = concreteTime(rec.CreatedAt, now, "createdAt", rec.ID)
	u.UpdatedAt = concreteTime(rec.UpdatedAt, now, "updatedAt", rec.ID)
	return u
}

func NormalizeUsers(recs []domain.UserRecord, now time.Time) []domain.User {
	if len(recs) == 0 {
		return nil
	}
	us := make([]domain.User, len(recs))
	for i, rec := range recs {
		us[i] = NormalizeUser(rec, now)
	}
	return us
}

func concreteTime(
	ts domain.Timestamp, now time.Time, field, id string,
) time.Time {
	const op = "service.concreteTime"

	t, ok := ts.ToTime()
	if ok {
		return t
	}

	if ts.Valid {
		slog.Warn("unconvertible timestamp, using current time",
			"op", op, "id", id, "field", field,
			"seconds", ts.Seconds, "nanos", ts.Nanos,
		)
	} else {
		slog.Debug("absent timestamp, using current time",
			"op", op, "id", id, "field", field,
		)
	}
	return now
}
