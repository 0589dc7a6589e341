package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/lumeo-app/lumeo-backend/internal/domain"
	"github.com/lumeo-app/lumeo-backend/internal/repository"
)

type matchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) repository.MatchRepository {
	return &matchRepository{db: db}
}

// CreateIfAbsent relies on the unique index on (user_a_id, user_b_id) to
// resolve the race where both members of a mutual like attempt promotion at
// the same time. Exactly one insert wins; the loser reads the winner's row.
func (r *matchRepository) CreateIfAbsent(ctx context.Context, match *domain.Match) (bool, error) {
	userAID, userBID := domain.NormalizePair(match.UserAID, match.UserBID)

	query := `
		INSERT INTO matches (user_a_id, user_b_id, is_active)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_a_id, user_b_id) DO NOTHING
		RETURNING id, created_at
	`
	err := r.db.QueryRowContext(ctx, query, userAID, userBID, match.IsActive).
		Scan(&match.ID, &match.CreatedAt)
	if err == nil {
		match.UserAID = userAID
		match.UserBID = userBID
		return true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	// Conflict: the pair already has a match (active or not). Surface the
	// existing row instead of an error.
	existing, err := r.GetByUsers(ctx, userAID, userBID)
	if err != nil {
		return false, err
	}
	*match = *existing
	return false, nil
}

func (r *matchRepository) GetByID(ctx context.Context, id int) (*domain.Match, error) {
	var match matchRow
	query := `SELECT * FROM matches WHERE id = $1`
	err := r.db.GetContext(ctx, &match, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return match.toDomain(), nil
}

func (r *matchRepository) GetByUsers(ctx context.Context, userAID, userBID int) (*domain.Match, error) {
	userAID, userBID = domain.NormalizePair(userAID, userBID)

	var match matchRow
	query := `SELECT * FROM matches WHERE user_a_id = $1 AND user_b_id = $2`
	err := r.db.GetContext(ctx, &match, query, userAID, userBID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMatchNotFound
		}
		return nil, err
	}
	return match.toDomain(), nil
}

func (r *matchRepository) GetActiveForUser(ctx context.Context, userID int) ([]*domain.Match, error) {
	var rows []matchRow
	query := `
		SELECT * FROM matches
		WHERE (user_a_id = $1 OR user_b_id = $1) AND is_active = true
		ORDER BY created_at DESC
	`
	if err := r.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}
	return toDomainMatches(rows), nil
}

func (r *matchRepository) GetRecentForUser(ctx context.Context, userID int, limit int) ([]*domain.Match, error) {
	var rows []matchRow
	query := `
		SELECT * FROM matches
		WHERE (user_a_id = $1 OR user_b_id = $1) AND is_active = true
		ORDER BY created_at DESC
		LIMIT $2
	`
	if err := r.db.SelectContext(ctx, &rows, query, userID, limit); err != nil {
		return nil, err
	}
	return toDomainMatches(rows), nil
}

func (r *matchRepository) CountActiveForUser(ctx context.Context, userID int) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM matches
		WHERE (user_a_id = $1 OR user_b_id = $1) AND is_active = true
	`
	err := r.db.GetContext(ctx, &count, query, userID)
	return count, err
}

func (r *matchRepository) SetActive(ctx context.Context, id int, isActive bool) error {
	query := `UPDATE matches SET is_active = $1 WHERE id = $2`
	result, err := r.db.ExecContext(ctx, query, isActive, id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func (r *matchRepository) UpdateAIFields(ctx context.Context, id int, explanation string, icebreakers []string) error {
	query := `UPDATE matches SET explanation = $1, icebreakers = $2 WHERE id = $3`
	result, err := r.db.ExecContext(ctx, query, explanation, pq.Array(icebreakers), id)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

// matchRow exists because sqlx cannot scan a text[] column into []string
// without pq.Array.
type matchRow struct {
	ID          int            `db:"id"`
	UserAID     int            `db:"user_a_id"`
	UserBID     int            `db:"user_b_id"`
	IsActive    bool           `db:"is_active"`
	Explanation *string        `db:"explanation"`
	Icebreakers pq.StringArray `db:"icebreakers"`
	CreatedAt   time.Time      `db:"created_at"`
}

func (m matchRow) toDomain() *domain.Match {
	return &domain.Match{
		ID:          m.ID,
		UserAID:     m.UserAID,
		UserBID:     m.UserBID,
		IsActive:    m.IsActive,
		Explanation: m.Explanation,
		Icebreakers: m.Icebreakers,
		CreatedAt:   m.CreatedAt,
	}
}

func toDomainMatches(rows []matchRow) []*domain.Match {
	matches := make([]*domain.Match, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, row.toDomain())
	}
	return matches
}
