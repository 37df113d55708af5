package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/izelavimelek/cliply/internal/models"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) Create(ctx context.Context, p *models.Profile) error {
	if p.Theme == "" {
		p.Theme = models.ThemeSystem
	}
	err := r.pool.QueryRow(ctx, `
		INSERT INTO profiles (user_id, display_name, bio, theme)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.DisplayName, p.Bio, p.Theme).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return translateErr(err)
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var p models.Profile
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, display_name, bio, theme, created_at, updated_at
		FROM profiles WHERE user_id = $1
	`, userID).Scan(&p.ID, &p.UserID, &p.DisplayName, &p.Bio, &p.Theme, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, translateErr(err)
	}
	return &p, nil
}

// Update writes only the profile fields a PATCH may change.
func (r *ProfileRepo) Update(ctx context.Context, userID uuid.UUID, displayName, bio *string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET
			display_name = COALESCE($1, display_name),
			bio = COALESCE($2, bio),
			updated_at = now()
		WHERE user_id = $3
	`, displayName, bio, userID)
	return err
}

func (r *ProfileRepo) UpdateTheme(ctx context.Context, userID uuid.UUID, theme string) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE profiles SET theme = $1, updated_at = now() WHERE user_id = $2
	`, theme, userID)
	return err
}
