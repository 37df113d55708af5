package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/izelavimelek/cliply/internal/models"
)

type SubmissionRepo struct {
	pool *pgxpool.Pool
}

func NewSubmissionRepo(pool *pgxpool.Pool) *SubmissionRepo {
	return &SubmissionRepo{pool: pool}
}

const submissionColumns = `
	id, campaign_id, creator_id, post_url, platform, status,
	verified_at, view_count, earnings, created_at, updated_at`

func (r *SubmissionRepo) Create(ctx context.Context, s *models.Submission) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO submissions (campaign_id, creator_id, post_url, platform, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, s.CampaignID, s.CreatorID, s.PostURL, s.Platform, s.Status).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return translateErr(err)
}

func (r *SubmissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Submission, error) {
	var s models.Submission
	err := r.pool.QueryRow(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE id = $1`, id,
	).Scan(&s.ID, &s.CampaignID, &s.CreatorID, &s.PostURL, &s.Platform, &s.Status,
		&s.VerifiedAt, &s.ViewCount, &s.Earnings, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &s, nil
}

// Review finalizes a review decision in a single write.
func (r *SubmissionRepo) Review(ctx context.Context, id uuid.UUID, status string, verifiedAt time.Time, earnings float64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE submissions SET
			status = $1, verified_at = $2, earnings = $3, updated_at = now()
		WHERE id = $4 AND status = $5
	`, status, verifiedAt, earnings, id, models.SubmissionStatusPending)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *SubmissionRepo) UpdateViewCount(ctx context.Context, id uuid.UUID, viewCount int64) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE submissions SET view_count = $1, updated_at = now() WHERE id = $2`, viewCount, id)
	return err
}

func (r *SubmissionRepo) ListByCampaign(ctx context.Context, campaignID uuid.UUID, limit, offset int) ([]models.Submission, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE campaign_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, campaignID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func (r *SubmissionRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]models.Submission, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx,
		`SELECT `+submissionColumns+` FROM submissions WHERE creator_id = $1
		 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, creatorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanSubmissions(rows)
}

func scanSubmissions(rows pgx.Rows) ([]models.Submission, error) {
	var subs []models.Submission
	for rows.Next() {
		var s models.Submission
		if err := rows.Scan(&s.ID, &s.CampaignID, &s.CreatorID, &s.PostURL, &s.Platform, &s.Status,
			&s.VerifiedAt, &s.ViewCount, &s.Earnings, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, nil
}
