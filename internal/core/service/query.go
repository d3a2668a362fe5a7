package service

import "github.com/niksmo/storefront/internal/core/domain"

const (
	FeaturedLimit = 3
	GeneralLimit  = 6
)

var byCreatedAtDesc = domain.Order{
	Field:     domain.FieldCreatedAt,
	Direction: domain.Desc,
}

// FeaturedQuery selects the newest featured and available products
// for the "new collection" grid.
func FeaturedQuery() domain.Query {
	order := byCreatedAtDesc
	return domain.Query{
		Collection: domain.ProductsCollection,
		Where: []domain.Predicate{
			domain.Eq(domain.FieldFeatured, true),
			domain.Eq(domain.FieldAvailable, true),
		},
		OrderBy: &order,
		Limit:   FeaturedLimit,
	}
}

// GeneralQuery selects the newest available products.
func GeneralQuery() domain.Query {
	order := byCreatedAtDesc
	return domain.Query{
		Collection: domain.ProductsCollection,
		Where: []domain.Predicate{
			domain.Eq(domain.FieldAvailable, true),
		},
		OrderBy: &order,
		Limit:   GeneralLimit,
	}
}

// AdminQuery selects admin users in store order. Only the first
// result is used, at most one admin is expected.
func AdminQuery() domain.Query {
	return domain.Query{
		Collection: domain.UsersCollection,
		Where: []domain.Predicate{
			domain.Eq(domain.FieldRole, string(domain.RoleAdmin)),
		},
	}
}
