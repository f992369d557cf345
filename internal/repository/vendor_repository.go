package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/food-supply/internal/domain"
)

// VendorRepository defines persistence access for vendors.
type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) error
	Update(ctx context.Context, vendor *domain.Vendor) error
	GetByID(ctx context.Context, id string) (*domain.Vendor, error)
	GetByEmail(ctx context.Context, email string) (*domain.Vendor, error)
}

type vendorRepository struct {
	pool *pgxpool.Pool
}

// NewVendorRepository returns a Postgres-backed implementation.
func NewVendorRepository(pool *pgxpool.Pool) VendorRepository {
	return &vendorRepository{pool: pool}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *domain.Vendor) error {
	const query = `
        INSERT INTO vendors (name, email, password_hash, phone, address, business_name, food_type)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		vendor.Name,
		vendor.Email,
		vendor.PasswordHash,
		vendor.Phone,
		vendor.Address,
		vendor.BusinessName,
		vendor.FoodType,
	).Scan(&vendor.ID, &vendor.CreatedAt, &vendor.UpdatedAt)
}

func (r *vendorRepository) Update(ctx context.Context, vendor *domain.Vendor) error {
	const query = `
        UPDATE vendors
        SET name=$1, phone=$2, address=$3, business_name=$4, food_type=$5, updated_at=NOW()
        WHERE id=$6
        RETURNING updated_at`

	if err := r.pool.QueryRow(ctx, query,
		vendor.Name,
		vendor.Phone,
		vendor.Address,
		vendor.BusinessName,
		vendor.FoodType,
		vendor.ID,
	).Scan(&vendor.UpdatedAt); err != nil {
		return err
	}
	return nil
}

func (r *vendorRepository) GetByID(ctx context.Context, id string) (*domain.Vendor, error) {
	const query = `
        SELECT id, name, email, password_hash, phone, address, business_name, food_type, created_at, updated_at
        FROM vendors WHERE id=$1`

	return scanVendor(r.pool.QueryRow(ctx, query, id))
}

func (r *vendorRepository) GetByEmail(ctx context.Context, email string) (*domain.Vendor, error) {
	const query = `
        SELECT id, name, email, password_hash, phone, address, business_name, food_type, created_at, updated_at
        FROM vendors WHERE email=$1`

	return scanVendor(r.pool.QueryRow(ctx, query, email))
}

func scanVendor(row pgx.Row) (*domain.Vendor, error) {
	var vendor domain.Vendor
	if err := row.Scan(
		&vendor.ID,
		&vendor.Name,
		&vendor.Email,
		&vendor.PasswordHash,
		&vendor.Phone,
		&vendor.Address,
		&vendor.BusinessName,
		&vendor.FoodType,
		&vendor.CreatedAt,
		&vendor.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &vendor, nil
}
