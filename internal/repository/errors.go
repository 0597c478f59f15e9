package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/validation"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

// PostgreSQL error codes.
const (
	uniqueViolationCode     = "23505"
	foreignKeyViolationCode = "23503"
	checkViolationCode      = "23514"
	notNullViolationCode    = "23502"
)

// constraintFields maps declared constraint names to the json field they guard.
var constraintFields = map[string]string{
	"users_email_key":               "email",
	"users_phone_key":               "phone",
	"admins_email_key":              "email",
	"admins_user_name_key":          "userName",
	"admins_phone_key":              "phone",
	"categories_name_key":           "name",
	"products_name_key":             "name",
	"products_id_category_fkey":     "idCategory",
	"products_price_check":          "price",
	"products_stock_quantity_check": "stockQuantity",
	"orders_id_user_fkey":           "idUser",
	"orders_total_price_check":      "totalPrice",
	"order_items_id_product_fkey":   "orderItems",
	"order_items_quantity_check":    "orderItems",
}

// mapError converts driver errors into storage failures. op prefixes errors that are
// passed through unclassified.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolationCode:
			return &apperrors.UniquenessViolation{Field: constraintFields[pgErr.ConstraintName], Err: err}
		case foreignKeyViolationCode:
			field := fieldOr(pgErr.ConstraintName, "reference")
			return apperrors.NewSchemaViolation(field, fmt.Sprintf("%s references a record that does not exist", field))
		case checkViolationCode:
			field := fieldOr(pgErr.ConstraintName, "value")
			return apperrors.NewSchemaViolation(field, fmt.Sprintf("%s is out of range", field))
		case notNullViolationCode:
			field := jsonName(pgErr.ColumnName)
			return apperrors.NewSchemaViolation(field, fmt.Sprintf("%s is required", field))
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// mapDeleteError is mapError for deletes, where a foreign key violation means the record
// is still referenced elsewhere.
func mapDeleteError(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
		return apperrors.NewSchemaViolation("id", "record is still referenced by other records")
	}
	return mapError(op, err)
}

// checkAffected reports ErrNotFound when a write touched no rows.
func checkAffected(op string, tag pgconn.CommandTag) error {
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%s: %w", op, apperrors.ErrNotFound)
	}
	return nil
}

// validate runs the entity's schema rules before it reaches the database.
func validate(entity any) error {
	return validation.Struct(entity)
}

func fieldOr(constraint, fallback string) string {
	if field, ok := constraintFields[constraint]; ok {
		return field
	}
	return fallback
}

// jsonName converts a snake_case column name to the camelCase json field name.
func jsonName(column string) string {
	parts := strings.Split(column, "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
