package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

func TestMapError_UniqueViolationNamesField(t *testing.T) {
	err := mapError("insert user", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	var unique *apperrors.UniquenessViolation
	require.True(t, errors.As(err, &unique))
	assert.Equal(t, "email", unique.Field)
}

func TestMapError_UnknownConstraintLeavesFieldEmpty(t *testing.T) {
	err := mapError("insert user", &pgconn.PgError{Code: "23505", ConstraintName: "users_legacy_idx"})

	var unique *apperrors.UniquenessViolation
	require.True(t, errors.As(err, &unique))
	assert.Empty(t, unique.Field)
}

func TestMapError_ForeignKeyIsSchemaViolation(t *testing.T) {
	err := mapError("insert product", &pgconn.PgError{Code: "23503", ConstraintName: "products_id_category_fkey"})

	var schema *apperrors.SchemaViolation
	require.True(t, errors.As(err, &schema))
	assert.Contains(t, schema.Fields, "idCategory")
}

func TestMapError_NotNullUsesJSONName(t *testing.T) {
	err := mapError("insert user", &pgconn.PgError{Code: "23502", ColumnName: "first_name"})

	var schema *apperrors.SchemaViolation
	require.True(t, errors.As(err, &schema))
	assert.Equal(t, "firstName is required", schema.Fields["firstName"])
}

func TestMapError_NoRowsIsNotFound(t *testing.T) {
	err := mapError("get user", pgx.ErrNoRows)

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMapError_OtherIsWrapped(t *testing.T) {
	raw := errors.New("conn closed")
	err := mapError("list users", raw)

	assert.ErrorIs(t, err, raw)
	assert.Equal(t, fmt.Sprintf("list users: %v", raw), err.Error())
	assert.Nil(t, mapError("noop", nil))
}

func TestMapDeleteError_ReferencedRecord(t *testing.T) {
	err := mapDeleteError("delete user", &pgconn.PgError{Code: "23503", ConstraintName: "orders_id_user_fkey"})

	var schema *apperrors.SchemaViolation
	require.True(t, errors.As(err, &schema))
	assert.Contains(t, schema.Fields, "id")
}

func TestCheckAffected(t *testing.T) {
	assert.ErrorIs(t, checkAffected("delete user", pgconn.NewCommandTag("DELETE 0")), apperrors.ErrNotFound)
	assert.NoError(t, checkAffected("delete user", pgconn.NewCommandTag("DELETE 1")))
}

func TestJSONName(t *testing.T) {
	assert.Equal(t, "idCategory", jsonName("id_category"))
	assert.Equal(t, "email", jsonName("email"))
	assert.Equal(t, "stockQuantity", jsonName("stock_quantity"))
}
