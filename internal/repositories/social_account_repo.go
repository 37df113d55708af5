package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/izelavimelek/cliply/internal/models"
)

// ErrVersionConflict means a versioned update lost a race with a concurrent
// writer; the caller should re-read and retry.
var ErrVersionConflict = errStr("version conflict")

type errStr string

func (e errStr) Error() string { return string(e) }

type SocialAccountRepo struct {
	pool *pgxpool.Pool
}

func NewSocialAccountRepo(pool *pgxpool.Pool) *SocialAccountRepo {
	return &SocialAccountRepo{pool: pool}
}

// Upsert links an account, refreshing tokens and stats if the same platform
// account is linked again.
func (r *SocialAccountRepo) Upsert(ctx context.Context, a *models.SocialAccount) error {
	err := r.pool.QueryRow(ctx, `
		INSERT INTO social_accounts
			(user_id, platform, platform_user_id, username, follower_count, verified, access_token, refresh_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, platform, platform_user_id) DO UPDATE SET
			username = EXCLUDED.username,
			follower_count = EXCLUDED.follower_count,
			verified = EXCLUDED.verified,
			access_token = EXCLUDED.access_token,
			refresh_token = COALESCE(EXCLUDED.refresh_token, social_accounts.refresh_token),
			version = social_accounts.version + 1
		RETURNING id, connected_at, version
	`, a.UserID, a.Platform, a.PlatformUserID, a.Username, a.FollowerCount, a.Verified,
		a.AccessToken, a.RefreshToken,
	).Scan(&a.ID, &a.ConnectedAt, &a.Version)
	return translateErr(err)
}

func (r *SocialAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.SocialAccount, error) {
	var a models.SocialAccount
	err := r.pool.QueryRow(ctx, `
		SELECT id, user_id, platform, platform_user_id, username, follower_count,
		       verified, access_token, refresh_token, connected_at, last_synced_at, version
		FROM social_accounts WHERE id = $1
	`, id).Scan(&a.ID, &a.UserID, &a.Platform, &a.PlatformUserID, &a.Username,
		&a.FollowerCount, &a.Verified, &a.AccessToken, &a.RefreshToken,
		&a.ConnectedAt, &a.LastSyncedAt, &a.Version)
	if err != nil {
		return nil, translateErr(err)
	}
	return &a, nil
}

func (r *SocialAccountRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.SocialAccount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, platform, platform_user_id, username, follower_count,
		       verified, access_token, refresh_token, connected_at, last_synced_at, version
		FROM social_accounts WHERE user_id = $1
		ORDER BY connected_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []models.SocialAccount
	for rows.Next() {
		var a models.SocialAccount
		if err := rows.Scan(&a.ID, &a.UserID, &a.Platform, &a.PlatformUserID, &a.Username,
			&a.FollowerCount, &a.Verified, &a.AccessToken, &a.RefreshToken,
			&a.ConnectedAt, &a.LastSyncedAt, &a.Version); err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	return accounts, nil
}

// UpdateStats is a field-scoped, version-conditioned write. Two concurrent
// syncs of the same account cannot silently overwrite each other: the
// second writer gets ErrVersionConflict.
func (r *SocialAccountRepo) UpdateStats(ctx context.Context, id uuid.UUID, version int64, followerCount int64, verified bool) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE social_accounts SET
			follower_count = $1,
			verified = $2,
			last_synced_at = now(),
			version = version + 1
		WHERE id = $3 AND version = $4
	`, followerCount, verified, id, version)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrVersionConflict
	}
	return nil
}

func (r *SocialAccountRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM social_accounts WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
