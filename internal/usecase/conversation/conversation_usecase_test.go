package conversation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lumeo-app/lumeo-backend/internal/domain"
	"github.com/lumeo-app/lumeo-backend/internal/repository/mocks"
)

func setup() (*ConversationUseCase, *mocks.MatchRepository, *mocks.ProfileRepository, *mocks.MessageRepository) {
	matchRepo := new(mocks.MatchRepository)
	profileRepo := new(mocks.ProfileRepository)
	messageRepo := new(mocks.MessageRepository)
	return NewConversationUseCase(matchRepo, profileRepo, messageRepo), matchRepo, profileRepo, messageRepo
}

func TestListConversationsOrdering(t *testing.T) {
	uc, matchRepo, profileRepo, messageRepo := setup()

	t1 := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	// M1 created at t1, no messages. M2 older but with a message at t2.
	m1 := &domain.Match{ID: 1, UserAID: 1, UserBID: 2, IsActive: true, CreatedAt: t1}
	m2 := &domain.Match{ID: 2, UserAID: 1, UserBID: 3, IsActive: true, CreatedAt: t1.Add(-time.Hour)}

	matchRepo.On("GetActiveForUser", mock.Anything, 1).Return([]*domain.Match{m1, m2}, nil)
	profileRepo.On("GetSummary", mock.Anything, 2).
		Return(&domain.ProfileSummary{UserID: 2, DisplayName: "Sam"}, nil)
	profileRepo.On("GetSummary", mock.Anything, 3).
		Return(&domain.ProfileSummary{UserID: 3, DisplayName: "Alex"}, nil)
	messageRepo.On("GetLatestByMatch", mock.Anything, 1).Return(nil, domain.ErrMessageNotFound)
	messageRepo.On("GetLatestByMatch", mock.Anything, 2).Return(&domain.Message{
		ID: 9, MatchID: 2, SenderID: 3, ReceiverID: 1,
		Content: "see you there", Kind: domain.MessageText, CreatedAt: t2,
	}, nil)
	messageRepo.On("CountUnreadByMatch", mock.Anything, 1, 1).Return(0, nil)
	messageRepo.On("CountUnreadByMatch", mock.Anything, 2, 1).Return(1, nil)

	result, err := uc.ListConversations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result, 2)

	// M2's message at t2 sorts before M1's creation at t1.
	assert.Equal(t, 2, result[0].MatchID)
	assert.Equal(t, "see you there", result[0].Preview)
	assert.Equal(t, 1, result[0].UnreadCount)
	assert.Equal(t, t2, result[0].LastEventAt)

	assert.Equal(t, 1, result[1].MatchID)
	assert.Equal(t, "Start the conversation", result[1].Preview)
	assert.Equal(t, t1, result[1].LastEventAt)
}

func TestListConversationsImagePreview(t *testing.T) {
	uc, matchRepo, profileRepo, messageRepo := setup()

	m := &domain.Match{ID: 1, UserAID: 1, UserBID: 2, IsActive: true, CreatedAt: time.Now()}
	matchRepo.On("GetActiveForUser", mock.Anything, 1).Return([]*domain.Match{m}, nil)
	profileRepo.On("GetSummary", mock.Anything, 2).
		Return(&domain.ProfileSummary{UserID: 2, DisplayName: "Sam"}, nil)
	messageRepo.On("GetLatestByMatch", mock.Anything, 1).Return(&domain.Message{
		ID: 9, MatchID: 1, SenderID: 2, ReceiverID: 1,
		Content: "https://cdn.example.com/img.jpg", Kind: domain.MessageImage, CreatedAt: time.Now(),
	}, nil)
	messageRepo.On("CountUnreadByMatch", mock.Anything, 1, 1).Return(1, nil)

	result, err := uc.ListConversations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "\U0001F4F7 Photo", result[0].Preview)
}

func TestListConversationsPartialProfileFailure(t *testing.T) {
	uc, matchRepo, profileRepo, messageRepo := setup()

	now := time.Now()
	m1 := &domain.Match{ID: 1, UserAID: 1, UserBID: 2, IsActive: true, CreatedAt: now}
	m2 := &domain.Match{ID: 2, UserAID: 1, UserBID: 3, IsActive: true, CreatedAt: now}

	matchRepo.On("GetActiveForUser", mock.Anything, 1).Return([]*domain.Match{m1, m2}, nil)
	profileRepo.On("GetSummary", mock.Anything, 2).Return(nil, domain.ErrProfileNotFound)
	profileRepo.On("GetSummary", mock.Anything, 3).
		Return(&domain.ProfileSummary{UserID: 3, DisplayName: "Alex"}, nil)
	messageRepo.On("GetLatestByMatch", mock.Anything, 2).Return(nil, domain.ErrMessageNotFound)
	messageRepo.On("CountUnreadByMatch", mock.Anything, 2, 1).Return(0, nil)

	result, err := uc.ListConversations(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 2, result[0].MatchID)
	assert.Equal(t, "Alex", result[0].Counterpart.DisplayName)
}

func TestListConversationsEmpty(t *testing.T) {
	uc, matchRepo, _, _ := setup()

	matchRepo.On("GetActiveForUser", mock.Anything, 1).Return([]*domain.Match{}, nil)

	result, err := uc.ListConversations(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, result)
}
