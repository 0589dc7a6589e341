package repository

import (
	"context"

	"github.com/lumeo-app/lumeo-backend/internal/domain"
)

type MatchRepository interface {
	// CreateIfAbsent inserts the match unless one already exists for the
	// normalized pair. It returns true when this call created the row; in
	// either case match is populated with the stored row.
	CreateIfAbsent(ctx context.Context, match *domain.Match) (bool, error)
	GetByID(ctx context.Context, id int) (*domain.Match, error)
	GetByUsers(ctx context.Context, userAID, userBID int) (*domain.Match, error)
	GetActiveForUser(ctx context.Context, userID int) ([]*domain.Match, error)
	GetRecentForUser(ctx context.Context, userID int, limit int) ([]*domain.Match, error)
	CountActiveForUser(ctx context.Context, userID int) (int, error)
	SetActive(ctx context.Context, id int, isActive bool) error
	UpdateAIFields(ctx context.Context, id int, explanation string, icebreakers []string) error
}
