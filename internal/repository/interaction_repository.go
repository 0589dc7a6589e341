package repository

import (
	"context"

	"github.com/lumeo-app/lumeo-backend/internal/domain"
)

type InteractionRepository interface {
	Create(ctx context.Context, interaction *domain.Interaction) error
	// HasLike reports whether at least one like from userID toward
	// targetUserID exists. Duplicate rows are tolerated.
	HasLike(ctx context.Context, userID, targetUserID int) (bool, error)
	GetLikesReceived(ctx context.Context, userID int, limit int) ([]*domain.Interaction, error)
	CountGiven(ctx context.Context, userID int) (int, error)
	CountLikesGiven(ctx context.Context, userID int) (int, error)
	CountLikesReceived(ctx context.Context, userID int) (int, error)
}
