package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/izelavimelek/cliply/internal/models"
)

type ApplicationRepo struct {
	pool *pgxpool.Pool
}

func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

func (r *ApplicationRepo) Create(ctx context.Context, a *models.CampaignApplication) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO campaign_applications (campaign_id, creator_id, status, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, a.CampaignID, a.CreatorID, a.Status, a.Message).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return translateErr(err)
}

func (r *ApplicationRepo) GetByCampaignAndCreator(ctx context.Context, campaignID, creatorID uuid.UUID) (*models.CampaignApplication, error) {
	var a models.CampaignApplication
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, creator_id, status, message, created_at, updated_at
		FROM campaign_applications WHERE campaign_id = $1 AND creator_id = $2
	`, campaignID, creatorID).Scan(&a.ID, &a.CampaignID, &a.CreatorID, &a.Status, &a.Message, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

// HasApproved reports whether a creator holds an approved application to
// the campaign. This is how creators establish ownership of campaign-scoped
// resources.
func (r *ApplicationRepo) HasApproved(ctx context.Context, campaignID, creatorID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS(
			SELECT 1 FROM campaign_applications
			WHERE campaign_id = $1 AND creator_id = $2 AND status = $3
		)
	`, campaignID, creatorID, models.ApplicationStatusApproved).Scan(&exists)
	return exists, err
}

func (r *ApplicationRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]models.CampaignApplication, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, creator_id, status, message, created_at, updated_at
		FROM campaign_applications WHERE campaign_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3
	`, campaignID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func (r *ApplicationRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]models.CampaignApplication, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, creator_id, status, message, created_at, updated_at
		FROM campaign_applications WHERE creator_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3
	`, creatorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func scanApplications(rows pgx.Rows) ([]models.CampaignApplication, error) {
	var apps []models.CampaignApplication
	for rows.Next() {
		var a models.CampaignApplication
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.CreatorID, &a.Status, &a.Message, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, nil
}
