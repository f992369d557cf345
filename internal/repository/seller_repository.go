package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/food-supply/internal/domain"
)

// SellerRepository defines persistence access for sellers.
type SellerRepository interface {
	Create(ctx context.Context, seller *domain.Seller) error
	Update(ctx context.Context, seller *domain.Seller) error
	GetByID(ctx context.Context, id string) (*domain.Seller, error)
	GetByEmail(ctx context.Context, email string) (*domain.Seller, error)
}

type sellerRepository struct {
	pool *pgxpool.Pool
}

// NewSellerRepository returns a Postgres-backed implementation.
func NewSellerRepository(pool *pgxpool.Pool) SellerRepository {
	return &sellerRepository{pool: pool}
}

func (r *sellerRepository) Create(ctx context.Context, seller *domain.Seller) error {
	const query = `
        INSERT INTO sellers (name, email, password_hash, phone, address, business_name, business_type, business_license)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		seller.Name,
		seller.Email,
		seller.PasswordHash,
		seller.Phone,
		seller.Address,
		seller.BusinessName,
		seller.BusinessType,
		seller.BusinessLicense,
	).Scan(&seller.ID, &seller.CreatedAt, &seller.UpdatedAt)
}

func (r *sellerRepository) Update(ctx context.Context, seller *domain.Seller) error {
	const query = `
        UPDATE sellers
        SET name=$1, phone=$2, address=$3, business_name=$4, business_type=$5, business_license=$6, updated_at=NOW()
        WHERE id=$7
        RETURNING updated_at`

	if err := r.pool.QueryRow(ctx, query,
		seller.Name,
		seller.Phone,
		seller.Address,
		seller.BusinessName,
		seller.BusinessType,
		seller.BusinessLicense,
		seller.ID,
	).Scan(&seller.UpdatedAt); err != nil {
		return err
	}
	return nil
}

func (r *sellerRepository) GetByID(ctx context.Context, id string) (*domain.Seller, error) {
	const query = `
        SELECT id, name, email, password_hash, phone, address, business_name, business_type, business_license, created_at, updated_at
        FROM sellers WHERE id=$1`

	return scanSeller(r.pool.QueryRow(ctx, query, id))
}

func (r *sellerRepository) GetByEmail(ctx context.Context, email string) (*domain.Seller, error) {
	const query = `
        SELECT id, name, email, password_hash, phone, address, business_name, business_type, business_license, created_at, updated_at
        FROM sellers WHERE email=$1`

	return scanSeller(r.pool.QueryRow(ctx, query, email))
}

func scanSeller(row pgx.Row) (*domain.Seller, error) {
	var seller domain.Seller
	if err := row.Scan(
		&seller.ID,
		&seller.Name,
		&seller.Email,
		&seller.PasswordHash,
		&seller.Phone,
		&seller.Address,
		&seller.BusinessName,
		&seller.BusinessType,
		&seller.BusinessLicense,
		&seller.CreatedAt,
		&seller.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &seller, nil
}
