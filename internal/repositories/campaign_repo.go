package repositories

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/izelavimelek/cliply/internal/models"
)

type CampaignRepo struct {
	pool *pgxpool.Pool
}

func NewCampaignRepo(pool *pgxpool.Pool) *CampaignRepo {
	return &CampaignRepo{pool: pool}
}

const campaignColumns = `
	id, brand_id, status, title, description, objective, category, platforms,
	total_budget, rate_type, rate_per_thousand, start_date, end_date, submission_deadline,
	clips_count, long_videos_count, logo_placement, brand_mention, call_to_action, hashtag_requirements,
	target_geography, target_languages, target_age_min, target_age_max,
	content_guidelines_accepted, terms_accepted, asset_urls, created_at, updated_at`

func scanCampaign(row interface{ Scan(...any) error }, c *models.Campaign) error {
	return row.Scan(
		&c.ID, &c.BrandID, &c.Status, &c.Title, &c.Description, &c.Objective, &c.Category, &c.Platforms,
		&c.TotalBudget, &c.RateType, &c.RatePerThousand, &c.StartDate, &c.EndDate, &c.SubmissionDeadline,
		&c.ClipsCount, &c.LongVideosCount, &c.LogoPlacement, &c.BrandMention, &c.CallToAction, &c.HashtagRequirements,
		&c.TargetGeography, &c.TargetLanguages, &c.TargetAgeMin, &c.TargetAgeMax,
		&c.ContentGuidelinesAccepted, &c.TermsAccepted, &c.AssetURLs, &c.CreatedAt, &c.UpdatedAt,
	)
}

func (r *CampaignRepo) Create(ctx context.Context, c *models.Campaign) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO campaigns (
			brand_id, status, title, description, objective, category, platforms,
			total_budget, rate_type, rate_per_thousand, start_date, end_date, submission_deadline,
			clips_count, long_videos_count, logo_placement, brand_mention, call_to_action, hashtag_requirements,
			target_geography, target_languages, target_age_min, target_age_max,
			content_guidelines_accepted, terms_accepted, asset_urls
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26)
		RETURNING id, created_at, updated_at
	`, c.BrandID, c.Status, c.Title, c.Description, c.Objective, c.Category, c.Platforms,
		c.TotalBudget, c.RateType, c.RatePerThousand, c.StartDate, c.EndDate, c.SubmissionDeadline,
		c.ClipsCount, c.LongVideosCount, c.LogoPlacement, c.BrandMention, c.CallToAction, c.HashtagRequirements,
		c.TargetGeography, c.TargetLanguages, c.TargetAgeMin, c.TargetAgeMax,
		c.ContentGuidelinesAccepted, c.TermsAccepted, c.AssetURLs,
	).Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
	return translateErr(err)
}

func (r *CampaignRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var c models.Campaign
	err := scanCampaign(r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id), &c)
	if err != nil {
		return nil, translateErr(err)
	}
	return &c, nil
}

func (r *CampaignRepo) Update(ctx context.Context, c *models.Campaign) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE campaigns SET
			title = $1, description = $2, objective = $3, category = $4, platforms = $5,
			total_budget = $6, rate_type = $7, rate_per_thousand = $8,
			start_date = $9, end_date = $10, submission_deadline = $11,
			clips_count = $12, long_videos_count = $13,
			logo_placement = $14, brand_mention = $15, call_to_action = $16, hashtag_requirements = $17,
			target_geography = $18, target_languages = $19, target_age_min = $20, target_age_max = $21,
			content_guidelines_accepted = $22, terms_accepted = $23, asset_urls = $24,
			updated_at = now()
		WHERE id = $25
	`, c.Title, c.Description, c.Objective, c.Category, c.Platforms,
		c.TotalBudget, c.RateType, c.RatePerThousand,
		c.StartDate, c.EndDate, c.SubmissionDeadline,
		c.ClipsCount, c.LongVideosCount,
		c.LogoPlacement, c.BrandMention, c.CallToAction, c.HashtagRequirements,
		c.TargetGeography, c.TargetLanguages, c.TargetAgeMin, c.TargetAgeMax,
		c.ContentGuidelinesAccepted, c.TermsAccepted, c.AssetURLs, c.ID)
	return err
}

// UpdateStatus is conditioned on the current status so concurrent
// transitions cannot double-apply.
func (r *CampaignRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $1, updated_at = now() WHERE id = $2 AND status = $3`,
		to, id, from)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *CampaignRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns WHERE id = $1`, id)
	return err
}

type CampaignFilter struct {
	BrandID  *uuid.UUID
	Status   *string
	Category *string
	Limit    int
	Offset   int
}

func (r *CampaignRepo) List(ctx context.Context, f CampaignFilter) ([]models.Campaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaigns`
	args := []any{}
	argIdx := 1
	where := []string{}

	if f.BrandID != nil {
		where = append(where, fmt.Sprintf("brand_id = $%d", argIdx))
		args = append(args, *f.BrandID)
		argIdx++
	}
	if f.Status != nil {
		where = append(where, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *f.Status)
		argIdx++
	}
	if f.Category != nil {
		where = append(where, fmt.Sprintf("category = $%d", argIdx))
		args = append(args, *f.Category)
		argIdx++
	}

	if len(where) > 0 {
		query += " WHERE "
		for i, w := range where {
			if i > 0 {
				query += " AND "
			}
			query += w
		}
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", argIdx, argIdx+1)
	args = append(args, limit, f.Offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var campaigns []models.Campaign
	for rows.Next() {
		var c models.Campaign
		if err := scanCampaign(rows, &c); err != nil {
			return nil, err
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}
