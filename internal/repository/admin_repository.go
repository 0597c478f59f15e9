package repository

//go:generate mockgen -source=admin_repository.go -destination=mocks/admin_repository_mock.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Fatenkh7/CODSOFT-T2-Backend/internal/domain"
)

// AdminRepository defines persistence access for back-office accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	Update(ctx context.Context, admin *domain.Admin) error
	GetByID(ctx context.Context, id string) (*domain.Admin, error)
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
	GetByUserName(ctx context.Context, userName string) (*domain.Admin, error)
	List(ctx context.Context) ([]domain.Admin, error)
	Delete(ctx context.Context, id string) error
}

type adminRepository struct {
	pool *pgxpool.Pool
}

// NewAdminRepository returns a Postgres-backed implementation.
func NewAdminRepository(pool *pgxpool.Pool) AdminRepository {
	return &adminRepository{pool: pool}
}

const adminColumns = `id, first_name, last_name, user_name, email, password_hash, phone, created_at, updated_at`

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var admin domain.Admin
	if err := row.Scan(
		&admin.ID,
		&admin.FirstName,
		&admin.LastName,
		&admin.UserName,
		&admin.Email,
		&admin.PasswordHash,
		&admin.Phone,
		&admin.CreatedAt,
		&admin.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	if err := validate(admin); err != nil {
		return err
	}
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}

	const query = `
        INSERT INTO admins (id, first_name, last_name, user_name, email, password_hash, phone)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		admin.ID,
		admin.FirstName,
		admin.LastName,
		admin.UserName,
		admin.Email,
		admin.PasswordHash,
		admin.Phone,
	).Scan(&admin.CreatedAt, &admin.UpdatedAt)
	return mapError("insert admin", err)
}

func (r *adminRepository) Update(ctx context.Context, admin *domain.Admin) error {
	if err := validate(admin); err != nil {
		return err
	}

	const query = `
        UPDATE admins SET first_name=$1, last_name=$2, user_name=$3, email=$4, password_hash=$5,
            phone=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		admin.FirstName,
		admin.LastName,
		admin.UserName,
		admin.Email,
		admin.PasswordHash,
		admin.Phone,
		admin.ID,
	).Scan(&admin.CreatedAt, &admin.UpdatedAt)
	return mapError("update admin", err)
}

func (r *adminRepository) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	return r.getOne(ctx, "get admin", `SELECT `+adminColumns+` FROM admins WHERE id=$1`, id)
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	return r.getOne(ctx, "get admin by email", `SELECT `+adminColumns+` FROM admins WHERE email=$1`, email)
}

func (r *adminRepository) GetByUserName(ctx context.Context, userName string) (*domain.Admin, error) {
	return r.getOne(ctx, "get admin by user name", `SELECT `+adminColumns+` FROM admins WHERE user_name=$1`, userName)
}

func (r *adminRepository) getOne(ctx context.Context, op, query string, arg any) (*domain.Admin, error) {
	admin, err := scanAdmin(r.pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, mapError(op, err)
	}
	return admin, nil
}

func (r *adminRepository) List(ctx context.Context) ([]domain.Admin, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+adminColumns+` FROM admins ORDER BY created_at, id`)
	if err != nil {
		return nil, mapError("list admins", err)
	}
	defer rows.Close()

	admins := make([]domain.Admin, 0)
	for rows.Next() {
		admin, err := scanAdmin(rows)
		if err != nil {
			return nil, mapError("scan admin", err)
		}
		admins = append(admins, *admin)
	}
	return admins, mapError("list admins", rows.Err())
}

func (r *adminRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM admins WHERE id=$1`, id)
	if err != nil {
		return mapDeleteError("delete admin", err)
	}
	return checkAffected("delete admin", cmd)
}
