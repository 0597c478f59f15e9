package repository

//go:generate mockgen -source=product_repository.go -destination=mocks/product_repository_mock.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
)

// ProductRepository stores catalog items.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	Update(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, filter ProductFilter) ([]domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// ProductFilter narrows product listings. The zero value lists everything.
type ProductFilter struct {
	IDCategory string
}

type productRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) ProductRepository {
	return &productRepository{pool: pool}
}

const productColumns = `id, name, description, price, stock_quantity, image, id_category, created_at, updated_at`

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var product domain.Product
	if err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.StockQuantity,
		&product.Image,
		&product.IDCategory,
		&product.CreatedAt,
		&product.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	if err := validate(product); err != nil {
		return err
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	const query = `
        INSERT INTO products (id, name, description, price, stock_quantity, image, id_category)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.StockQuantity,
		product.Image,
		product.IDCategory,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	return mapError("insert product", err)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	if err := validate(product); err != nil {
		return err
	}

	const query = `
        UPDATE products SET name=$1, description=$2, price=$3, stock_quantity=$4, image=$5,
            id_category=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.StockQuantity,
		product.Image,
		product.IDCategory,
		product.ID,
	).Scan(&product.CreatedAt, &product.UpdatedAt)
	return mapError("update product", err)
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	product, err := scanProduct(r.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id=$1`, id))
	if err != nil {
		return nil, mapError("get product", err)
	}
	return product, nil
}

func (r *productRepository) List(ctx context.Context, filter ProductFilter) ([]domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products`
	args := []any{}
	if filter.IDCategory != "" {
		query += ` WHERE id_category=$1`
		args = append(args, filter.IDCategory)
	}
	query += ` ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("list products", err)
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, mapError("scan product", err)
		}
		products = append(products, *product)
	}
	return products, mapError("list products", rows.Err())
}

func (r *productRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id=$1`, id)
	if err != nil {
		return mapDeleteError("delete product", err)
	}
	return checkAffected("delete product", cmd)
}
