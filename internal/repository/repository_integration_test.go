package repository

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/config"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/persistence"
	apperrors "github.com/Fatenkh7/CODSOFT-T2-Backend/pkg/util/errorutil"
)

// newTestPool connects to TEST_POSTGRES_DSN, migrates it and empties every table.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set")
	}
	ctx := context.Background()
	pg, err := persistence.NewPostgres(ctx, config.PostgresConfig{DSN: dsn, MaxConns: 4}, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(pg.Close)

	require.NoError(t, persistence.RunMigrations(ctx, pg.PoolHandle(), zap.NewNop()))
	_, err = pg.PoolHandle().Exec(ctx, `TRUNCATE order_items, orders, products, categories, inbox_messages, admins, users CASCADE`)
	require.NoError(t, err)
	return pg.PoolHandle()
}

func testUser(email, phone string) *domain.User {
	return &domain.User{
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        email,
		PasswordHash: "$2a$04$hash",
		Phone:        phone,
		Country:      "UK",
		Address:      "12 St James's Square",
	}
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	repo := NewUserRepository(newTestPool(t))
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser("a@b.com", "111")))
	err := repo.Create(ctx, testUser("a@b.com", "222"))

	var unique *apperrors.UniquenessViolation
	require.True(t, errors.As(err, &unique), "got %v", err)
	assert.Equal(t, "email", unique.Field)
}

func TestUserRepository_MissingFieldIsSchemaViolation(t *testing.T) {
	repo := NewUserRepository(newTestPool(t))
	user := testUser("a@b.com", "111")
	user.FirstName = ""

	err := repo.Create(context.Background(), user)

	var schema *apperrors.SchemaViolation
	require.True(t, errors.As(err, &schema))
	assert.Contains(t, schema.Fields, "firstName")
}

func TestUserRepository_DeleteMissing(t *testing.T) {
	repo := NewUserRepository(newTestPool(t))
	err := repo.Delete(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestCatalogAndOrders_RoundTrip(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()
	users := NewUserRepository(pool)
	categories := NewCategoryRepository(pool)
	products := NewProductRepository(pool)
	orders := NewOrderRepository(pool)

	user := testUser("buyer@example.com", "333")
	require.NoError(t, users.Create(ctx, user))
	category := &domain.Category{Name: "Lighting"}
	require.NoError(t, categories.Create(ctx, category))

	orphan := &domain.Product{Name: "Orphan", Price: decimal.RequireFromString("1.00"), Image: "x.png", IDCategory: uuid.NewString()}
	var schema *apperrors.SchemaViolation
	require.True(t, errors.As(products.Create(ctx, orphan), &schema))
	assert.Contains(t, schema.Fields, "idCategory")

	product := &domain.Product{Name: "Lamp", Price: decimal.RequireFromString("19.99"), StockQuantity: 5, Image: "lamp.png", IDCategory: category.ID}
	require.NoError(t, products.Create(ctx, product))
	got, err := products.GetByID(ctx, product.ID)
	require.NoError(t, err)
	assert.True(t, got.Price.Equal(product.Price))

	order := &domain.Order{
		IDUser:          user.ID,
		OrderItems:      []domain.OrderItem{{IDProduct: product.ID, Quantity: 2}},
		ShippingAddress: "1 Main St",
		TotalPrice:      decimal.RequireFromString("39.98"),
	}
	require.NoError(t, orders.Create(ctx, order))

	listed, err := orders.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, order.OrderItems, listed[0].OrderItems)

	err = products.Delete(ctx, product.ID)
	require.True(t, errors.As(err, &schema))
	assert.Contains(t, schema.Fields, "id")

	require.NoError(t, orders.Delete(ctx, order.ID))
	require.NoError(t, products.Delete(ctx, product.ID))
}
