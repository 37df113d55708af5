package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/izelavimelek/cliply/internal/models"
)

type BrandRepo struct {
	pool *pgxpool.Pool
}

func NewBrandRepo(pool *pgxpool.Pool) *BrandRepo {
	return &BrandRepo{pool: pool}
}

func (r *BrandRepo) Create(ctx context.Context, b *models.Brand) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO brands (owner_id, name, industry, description, website)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, b.OwnerID, b.Name, b.Industry, b.Description, b.Website).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return translateErr(err)
}

func (r *BrandRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Brand, error) {
	var b models.Brand
	err := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, name, industry, description, website, created_at, updated_at
		FROM brands WHERE id = $1
	`, id).Scan(&b.ID, &b.OwnerID, &b.Name, &b.Industry, &b.Description, &b.Website, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &b, nil
}

func (r *BrandRepo) GetByOwnerID(ctx context.Context, ownerID uuid.UUID) (*models.Brand, error) {
	var b models.Brand
	err := r.pool.QueryRow(ctx, `
		SELECT id, owner_id, name, industry, description, website, created_at, updated_at
		FROM brands WHERE owner_id = $1
	`, ownerID).Scan(&b.ID, &b.OwnerID, &b.Name, &b.Industry, &b.Description, &b.Website, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &b, nil
}

func (r *BrandRepo) Update(ctx context.Context, b *models.Brand) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE brands SET
			name = $1, industry = $2, description = $3, website = $4, updated_at = now()
		WHERE id = $5
	`, b.Name, b.Industry, b.Description, b.Website, b.ID)
	return err
}
