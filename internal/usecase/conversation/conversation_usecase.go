package conversation

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/lumeo-app/lumeo-backend/internal/domain"
	"github.com/lumeo-app/lumeo-backend/internal/logger"
	"github.com/lumeo-app/lumeo-backend/internal/repository"
)

const (
	imagePreview = "\U0001F4F7 Photo"
	emptyPreview = "Start the conversation"
)

var log = logger.New("conversation")

type ConversationUseCase struct {
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
	messageRepo repository.MessageRepository
}

func NewConversationUseCase(
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	messageRepo repository.MessageRepository,
) *ConversationUseCase {
	return &ConversationUseCase{
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
		messageRepo: messageRepo,
	}
}

// ConversationView is the derived per-match row of the conversation list.
type ConversationView struct {
	MatchID     int                    `json:"match_id"`
	Counterpart *domain.ProfileSummary `json:"counterpart"`
	Preview     string                 `json:"preview"`
	UnreadCount int                    `json:"unread_count"`
	LastEventAt time.Time              `json:"last_event_at"`
}

// ListConversations joins the user's active matches with counterpart
// profiles and last messages. Per-match lookups are independent, so they run
// concurrently; a match whose profile cannot be resolved is dropped instead
// of failing the whole call.
func (uc *ConversationUseCase) ListConversations(ctx context.Context, userID int) ([]*ConversationView, error) {
	matches, err := uc.matchRepo.GetActiveForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]*ConversationView, len(matches))
	var wg sync.WaitGroup
	for i, m := range matches {
		wg.Add(1)
		go func(i int, m *domain.Match) {
			defer wg.Done()
			views[i] = uc.buildView(ctx, userID, m)
		}(i, m)
	}
	wg.Wait()

	result := make([]*ConversationView, 0, len(views))
	for _, v := range views {
		if v != nil {
			result = append(result, v)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].LastEventAt.After(result[j].LastEventAt)
	})

	return result, nil
}

func (uc *ConversationUseCase) buildView(ctx context.Context, userID int, m *domain.Match) *ConversationView {
	otherID, ok := m.OtherUserID(userID)
	if !ok {
		return nil
	}

	counterpart, err := uc.profileRepo.GetSummary(ctx, otherID)
	if err != nil {
		log.Warn("dropping conversation for match %d, profile %d unavailable: %v", m.ID, otherID, err)
		return nil
	}

	view := &ConversationView{
		MatchID:     m.ID,
		Counterpart: counterpart,
		Preview:     emptyPreview,
		LastEventAt: m.CreatedAt,
	}

	last, err := uc.messageRepo.GetLatestByMatch(ctx, m.ID)
	switch {
	case err == nil:
		if last.Kind == domain.MessageImage {
			view.Preview = imagePreview
		} else {
			view.Preview = last.Content
		}
		view.LastEventAt = last.CreatedAt
	case errors.Is(err, domain.ErrMessageNotFound):
		// No messages yet; keep the placeholder and the match timestamp.
	default:
		log.Warn("last message lookup failed for match %d: %v", m.ID, err)
	}

	unread, err := uc.messageRepo.CountUnreadByMatch(ctx, m.ID, userID)
	if err != nil {
		log.Warn("unread count failed for match %d: %v", m.ID, err)
		unread = 0
	}
	view.UnreadCount = unread

	return view
}
