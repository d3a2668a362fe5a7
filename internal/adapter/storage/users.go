package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.UsersReader = (*UsersRepository)(nil)

var usersCollection = collection{
	name:  domain.UsersCollection,
	table: "users",
	columns: []string{
		"id", "email", "name", "phone_number", "role",
		"created_at", "updated_at",
	},
	fields: map[string]column{
		domain.FieldRole:      {"role", stringValue},
		domain.FieldCreatedAt: {"created_at", timeValue},
	},
}

type UsersRepository struct {
	sqldb sqldb
}

func NewUsersRepository(sqldb sqldb) UsersRepository {
	return UsersRepository{sqldb}
}

// ReadUsers returns users in the order the database yields them.
func (r UsersRepository) ReadUsers(
	ctx context.Context, q domain.Query,
) ([]domain.UserRecord, error) {
	const op = "UsersRepository.ReadUsers"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := usersCollection.selectQuery(q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.sqldb.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var vs []domain.UserRecord
	for rows.Next() {
		var (
			v         domain.UserRecord
			phone     sql.NullString
			role      string
			createdAt pgtype.Timestamptz
			updatedAt pgtype.Timestamptz
		)
		err := rows.Scan(
			&v.ID, &v.Email, &v.Name, &phone, &role, &createdAt, &updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if phone.Valid {
			v.PhoneNumber = &phone.String
		}
		v.Role = domain.Role(role)
		v.CreatedAt = toTimestamp(createdAt)
		v.UpdatedAt = toTimestamp(updatedAt)
		vs = append(vs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return vs, nil
}
