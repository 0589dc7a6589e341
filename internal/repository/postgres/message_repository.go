package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lumeo-app/lumeo-backend/internal/domain"
	"github.com/lumeo-app/lumeo-backend/internal/repository"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	query := `
		INSERT INTO messages (match_id, sender_id, receiver_id, content, kind, is_read)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(
		ctx, query,
		message.MatchID, message.SenderID, message.ReceiverID,
		message.Content, message.Kind, message.IsRead,
	).Scan(&message.ID, &message.CreatedAt)
}

func (r *messageRepository) GetByMatch(ctx context.Context, matchID int) ([]*domain.Message, error) {
	var messages []*domain.Message
	query := `
		SELECT * FROM messages
		WHERE match_id = $1
		ORDER BY created_at ASC
	`
	err := r.db.SelectContext(ctx, &messages, query, matchID)
	return messages, err
}

func (r *messageRepository) GetLatestByMatch(ctx context.Context, matchID int) (*domain.Message, error) {
	var message domain.Message
	query := `
		SELECT * FROM messages
		WHERE match_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`
	err := r.db.GetContext(ctx, &message, query, matchID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrMessageNotFound
		}
		return nil, err
	}
	return &message, nil
}

func (r *messageRepository) MarkRead(ctx context.Context, matchID, receiverID int) (int64, error) {
	query := `
		UPDATE messages SET is_read = true
		WHERE match_id = $1 AND receiver_id = $2 AND is_read = false
	`
	result, err := r.db.ExecContext(ctx, query, matchID, receiverID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *messageRepository) CountUnread(ctx context.Context, receiverID int) (int, error) {
	var count int
	// Joining on the match keeps deactivated conversations out of the badge.
	query := `
		SELECT COUNT(*)
		FROM messages m
		JOIN matches mt ON mt.id = m.match_id
		WHERE m.receiver_id = $1 AND m.sender_id <> $1
		  AND m.is_read = false AND mt.is_active = true
	`
	err := r.db.GetContext(ctx, &count, query, receiverID)
	return count, err
}

func (r *messageRepository) CountUnreadByMatch(ctx context.Context, matchID, receiverID int) (int, error) {
	var count int
	query := `
		SELECT COUNT(*) FROM messages
		WHERE match_id = $1 AND receiver_id = $2 AND is_read = false
	`
	err := r.db.GetContext(ctx, &count, query, matchID, receiverID)
	return count, err
}
