package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.ProductsReader = (*ProductsRepository)(nil)

var productsCollection = collection{
	name:  domain.ProductsCollection,
	table: "products",
	columns: []string{
		"id", "name", "slug", "description", "base_price", "stock",
		"category_id", "category_name", "images", "featured", "available",
		"created_at", "updated_at",
	},
	fields: map[string]column{
		domain.FieldFeatured:  {"featured", boolValue},
		domain.FieldAvailable: {"available", boolValue},
		domain.FieldCreatedAt: {"created_at", timeValue},
	},
}

type productImage struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Alt   string `json:"alt,omitempty"`
	Order int    `json:"order"`
}

type ProductsRepository struct {
	sqldb sqldb
}

func NewProductsRepository(sqldb sqldb) ProductsRepository {
	return ProductsRepository{sqldb}
}

func (r ProductsRepository) ReadProducts(
	ctx context.Context, q domain.Query,
) ([]domain.ProductRecord, error) {
	const op = "ProductsRepository.ReadProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := productsCollection.selectQuery(q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.sqldb.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var vs []domain.ProductRecord
	for rows.Next() {
		v, err := r.scan(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		vs = append(vs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return vs, nil
}

func (r ProductsRepository) scan(rows *sql.Rows) (domain.ProductRecord, error) {
	var (
		v            domain.ProductRecord
		categoryName sql.NullString
		imagesB      []byte
		createdAt    pgtype.Timestamptz
		updatedAt    pgtype.Timestamptz
	)
	err := rows.Scan(
		&v.ID, &v.Name, &v.Slug, &v.Description, &v.BasePrice, &v.Stock,
		&v.CategoryID, &categoryName, &imagesB, &v.Featured, &v.Available,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return domain.ProductRecord{}, err
	}

	if categoryName.Valid {
		v.CategoryName = &categoryName.String
	}
	v.Images = r.images(v.ID, imagesB)
	v.CreatedAt = toTimestamp(createdAt)
	v.UpdatedAt = toTimestamp(updatedAt)
	return v, nil
}

// images decodes the images column. A malformed value yields no images
// rather than dropping the product.
func (ProductsRepository) images(id string, data []byte) []domain.ProductImage {
	const op = "ProductsRepository.images"

	if len(data) == 0 {
		return nil
	}

	var imgs []productImage
	if err := json.Unmarshal(data, &imgs); err != nil {
		slog.Warn("malformed images, skipping", "op", op, "id", id, "err", err)
		return nil
	}

	vs := make([]domain.ProductImage, len(imgs))
	for i, img := range imgs {
		vs[i] = domain.ProductImage{
			ID:    img.ID,
			URL:   img.URL,
			Alt:   img.Alt,
			Order: img.Order,
		}
	}
	return vs
}
