package message

import (
	"context"
	"strings"

	"github.com/lumeo-app/lumeo-backend/internal/domain"
	"github.com/lumeo-app/lumeo-backend/internal/repository"
)

type MessageUseCase struct {
	matchRepo   repository.MatchRepository
	messageRepo repository.MessageRepository
}

func NewMessageUseCase(
	matchRepo repository.MatchRepository,
	messageRepo repository.MessageRepository,
) *MessageUseCase {
	return &MessageUseCase{
		matchRepo:   matchRepo,
		messageRepo: messageRepo,
	}
}

// SendRequest represents a message send action
type SendRequest struct {
	MatchID int    `json:"match_id" binding:"required"`
	Content string `json:"content" binding:"required"`
	Kind    string `json:"kind" binding:"omitempty,messagekind"`
}

// MessageView is a message shaped for the sender's or viewer's UI.
type MessageView struct {
	*domain.Message
	DisplayTime string `json:"display_time"`
	From        string `json:"from"`
}

func newMessageView(m *domain.Message, viewerID int) *MessageView {
	from := "them"
	if m.SenderID == viewerID {
		from = "me"
	}
	return &MessageView{
		Message:     m,
		DisplayTime: m.CreatedAt.Format("15:04"),
		From:        from,
	}
}

// Send validates match membership, derives the receiver and persists the
// message. Authorization failures are hard errors; there is no graceful
// degradation on this path.
func (uc *MessageUseCase) Send(ctx context.Context, senderID int, req *SendRequest) (*MessageView, error) {
	m, err := uc.matchRepo.GetByID(ctx, req.MatchID)
	if err != nil {
		return nil, err
	}
	if !m.IsActive {
		return nil, domain.ErrMatchNotFound
	}

	receiverID, ok := m.OtherUserID(senderID)
	if !ok {
		return nil, domain.ErrNotMatchMember
	}

	if strings.TrimSpace(req.Content) == "" {
		return nil, domain.ErrEmptyContent
	}

	kind := domain.MessageText
	if req.Kind != "" {
		kind, err = domain.ParseMessageKind(req.Kind)
		if err != nil {
			return nil, err
		}
	}

	message := &domain.Message{
		MatchID:    req.MatchID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    req.Content,
		Kind:       kind,
		IsRead:     false,
	}

	if err := uc.messageRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	return newMessageView(message, senderID), nil
}

// History returns a match's messages, oldest first, member-gated.
func (uc *MessageUseCase) History(ctx context.Context, userID, matchID int) ([]*MessageView, error) {
	m, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if !m.HasUser(userID) {
		return nil, domain.ErrNotMatchMember
	}

	messages, err := uc.messageRepo.GetByMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	views := make([]*MessageView, 0, len(messages))
	for _, msg := range messages {
		views = append(views, newMessageView(msg, userID))
	}
	return views, nil
}

// MarkRead flags every unread message addressed to userID within the match.
// Having nothing to mark is not an error.
func (uc *MessageUseCase) MarkRead(ctx context.Context, userID, matchID int) error {
	m, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if !m.HasUser(userID) {
		return domain.ErrNotMatchMember
	}

	_, err = uc.messageRepo.MarkRead(ctx, matchID, userID)
	return err
}
