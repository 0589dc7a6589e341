package repository

import (
	"context"

	"github.com/lumeo-app/lumeo-backend/internal/domain"
)

type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	GetByMatch(ctx context.Context, matchID int) ([]*domain.Message, error)
	// GetLatestByMatch returns domain.ErrMessageNotFound when the match has
	// no messages yet.
	GetLatestByMatch(ctx context.Context, matchID int) (*domain.Message, error)
	MarkRead(ctx context.Context, matchID, receiverID int) (int64, error)
	CountUnread(ctx context.Context, receiverID int) (int, error)
	CountUnreadByMatch(ctx context.Context, matchID, receiverID int) (int, error)
}
