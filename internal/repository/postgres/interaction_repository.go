package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lumeo-app/lumeo-backend/internal/domain"
	"github.com/lumeo-app/lumeo-backend/internal/repository"
)

type interactionRepository struct {
	db *sqlx.DB
}

func NewInteractionRepository(db *sqlx.DB) repository.InteractionRepository {
	return &interactionRepository{db: db}
}

func (r *interactionRepository) Create(ctx context.Context, interaction *domain.Interaction) error {
	query := `
		INSERT INTO interactions (user_id, target_user_id, kind)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, interaction.UserID, interaction.TargetUserID, interaction.Kind).
		Scan(&interaction.ID, &interaction.CreatedAt)
}

func (r *interactionRepository) HasLike(ctx context.Context, userID, targetUserID int) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS (
			SELECT 1 FROM interactions
			WHERE user_id = $1 AND target_user_id = $2 AND kind = 'like'
		)
	`
	err := r.db.GetContext(ctx, &exists, query, userID, targetUserID)
	return exists, err
}

func (r *interactionRepository) GetLikesReceived(ctx context.Context, userID int, limit int) ([]*domain.Interaction, error) {
	var interactions []*domain.Interaction
	// DISTINCT ON keeps one row per liker even when the legacy data holds
	// duplicate likes for the same pair.
	query := `
		SELECT * FROM (
			SELECT DISTINCT ON (user_id) *
			FROM interactions
			WHERE target_user_id = $1 AND kind = 'like'
			ORDER BY user_id, created_at DESC
		) likes
		ORDER BY created_at DESC
		LIMIT $2
	`
	err := r.db.SelectContext(ctx, &interactions, query, userID, limit)
	return interactions, err
}

func (r *interactionRepository) CountGiven(ctx context.Context, userID int) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM interactions WHERE user_id = $1`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}

func (r *interactionRepository) CountLikesGiven(ctx context.Context, userID int) (int, error) {
	var count int
	query := `
		SELECT COUNT(DISTINCT target_user_id)
		FROM interactions
		WHERE user_id = $1 AND kind = 'like'
	`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}

func (r *interactionRepository) CountLikesReceived(ctx context.Context, userID int) (int, error) {
	var count int
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM interactions
		WHERE target_user_id = $1 AND kind = 'like'
	`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}
