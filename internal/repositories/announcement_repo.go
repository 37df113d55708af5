package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/izelavimelek/cliply/internal/models"
)

type AnnouncementRepo struct {
	pool *pgxpool.Pool
}

func NewAnnouncementRepo(pool *pgxpool.Pool) *AnnouncementRepo {
	return &AnnouncementRepo{pool: pool}
}

func (r *AnnouncementRepo) Create(ctx context.Context, a *models.Announcement) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO announcements (campaign_id, brand_id, title, body, priority, pinned)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, a.CampaignID, a.BrandID, a.Title, a.Body, a.Priority, a.Pinned).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return translateErr(err)
}

func (r *AnnouncementRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Announcement, error) {
	var a models.Announcement
	err := r.pool.QueryRow(ctx, `
		SELECT id, campaign_id, brand_id, title, body, priority, pinned, created_at, updated_at
		FROM announcements WHERE id = $1
	`, id).Scan(&a.ID, &a.CampaignID, &a.BrandID, &a.Title, &a.Body, &a.Priority, &a.Pinned, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

func (r *AnnouncementRepo) Update(ctx context.Context, a *models.Announcement) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE announcements SET
			title = $1, body = $2, priority = $3, pinned = $4, updated_at = now()
		WHERE id = $5
	`, a.Title, a.Body, a.Priority, a.Pinned, a.ID)
	return err
}

func (r *AnnouncementRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByCampaign returns pinned announcements first, newest first within
// each group.
func (r *AnnouncementRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]models.Announcement, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, campaign_id, brand_id, title, body, priority, pinned, created_at, updated_at
		FROM announcements WHERE campaign_id = $1
		ORDER BY pinned DESC, created_at DESC LIMIT $2 OFFSET $3
	`, campaignID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var anns []models.Announcement
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.CampaignID, &a.BrandID, &a.Title, &a.Body, &a.Priority, &a.Pinned, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		anns = append(anns, a)
	}
	return anns, nil
}
