package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/izelavimelek/cliply/internal/models"
)

type PayoutRepo struct {
	pool *pgxpool.Pool
}

func NewPayoutRepo(pool *pgxpool.Pool) *PayoutRepo {
	return &PayoutRepo{pool: pool}
}

func (r *PayoutRepo) Create(ctx context.Context, p *models.Payout) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO payouts (submission_id, creator_id, amount, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, p.SubmissionID, p.CreatorID, p.Amount, p.Status).Scan(&p.ID, &p.CreatedAt)
	return translateErr(err)
}

func (r *PayoutRepo) ListByCreator(ctx context.Context, creatorID uuid.UUID, limit, offset int) ([]models.Payout, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, submission_id, creator_id, amount, status, processed_at, created_at
		FROM payouts WHERE creator_id = $1
		ORDER BY created_at DESC LIMIT $2 OFFSET $3
	`, creatorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payouts []models.Payout
	for rows.Next() {
		var p models.Payout
		if err := rows.Scan(&p.ID, &p.SubmissionID, &p.CreatorID, &p.Amount, &p.Status, &p.ProcessedAt, &p.CreatedAt); err != nil {
			return nil, err
		}
		payouts = append(payouts, p)
	}
	return payouts, nil
}

func (r *PayoutRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string, processedAt *time.Time) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE payouts SET status = $1, processed_at = $2 WHERE id = $3`, status, processedAt, id)
	return err
}
