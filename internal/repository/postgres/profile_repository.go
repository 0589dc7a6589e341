package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/lumeo-app/lumeo-backend/internal/domain"
	"github.com/lumeo-app/lumeo-backend/internal/repository"
)

type profileRepository struct {
	db *sqlx.DB
}

func NewProfileRepository(db *sqlx.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetSummary(ctx context.Context, userID int) (*domain.ProfileSummary, error) {
	var summary domain.ProfileSummary
	query := `
		SELECT user_id, display_name, avatar_url, bio, interests
		FROM profiles WHERE user_id = $1
	`
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&summary.UserID, &summary.DisplayName, &summary.AvatarURL,
		&summary.Bio, pq.Array(&summary.Interests),
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &summary, nil
}
