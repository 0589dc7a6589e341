package message

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

func setup() (*MessageUseCase, *mocks.MatchRepository, *mocks.MessageRepository) {
	matchRepo := new(mocks.MatchRepository)
	messageRepo := new(mocks.MessageRepository)
	return NewMessageUseCase(matchRepo, messageRepo), matchRepo, messageRepo
}

func matchBetween(a, b int, active bool) *domain.Match {
	return &domain.Match{ID: 10, UserAID: a, UserBID: b, IsActive: active, CreatedAt: time.Now()}
}

func TestSendDerivesReceiver(t *testing.T) {
	uc, matchRepo, messageRepo := setup()

	matchRepo.On("GetByID", mock.Anything, 10).Return(matchBetween(1, 2, true), nil)
	messageRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Message")).
		Run(func(args mock.Arguments) {
			m := args.Get(1).(*domain.Message)
			m.ID = 77
			m.CreatedAt = time.Date(2026, 8, 1, 14, 30, 0, 0, time.UTC)
		}).
		Return(nil)

	view, err := uc.Send(context.Background(), 1, &SendRequest{MatchID: 10, Content: "hello"})
	require.NoError(t, err)
	assert.Equal(t, 2, view.ReceiverID)
	assert.Equal(t, 1, view.SenderID)
	assert.False(t, view.IsRead)
	assert.Equal(t, domain.MessageText, view.Kind)
	assert.Equal(t, "14:30", view.DisplayTime)
	assert.Equal(t, "me", view.From)

	// And the other direction.
	view, err = uc.Send(context.Background(), 2, &SendRequest{MatchID: 10, Content: "hi back"})
	require.NoError(t, err)
	assert.Equal(t, 1, view.ReceiverID)
}

func TestSendRejectsNonMember(t *testing.T) {
	uc, matchRepo, messageRepo := setup()

	matchRepo.On("GetByID", mock.Anything, 10).Return(matchBetween(1, 2, true), nil)

	_, err := uc.Send(context.Background(), 3, &SendRequest{MatchID: 10, Content: "hello"})
	assert.ErrorIs(t, err, domain.ErrNotMatchMember)
	messageRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendRejectsMissingMatch(t *testing.T) {
	uc, matchRepo, _ := setup()

	matchRepo.On("GetByID", mock.Anything, 404).Return(nil, domain.ErrMatchNotFound)

	_, err := uc.Send(context.Background(), 1, &SendRequest{MatchID: 404, Content: "hello"})
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}

func TestSendRejectsInactiveMatch(t *testing.T) {
	uc, matchRepo, _ := setup()

	matchRepo.On("GetByID", mock.Anything, 10).Return(matchBetween(1, 2, false), nil)

	_, err := uc.Send(context.Background(), 1, &SendRequest{MatchID: 10, Content: "hello"})
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}

func TestSendRejectsEmptyContent(t *testing.T) {
	uc, matchRepo, _ := setup()

	matchRepo.On("GetByID", mock.Anything, 10).Return(matchBetween(1, 2, true), nil)

	_, err := uc.Send(context.Background(), 1, &SendRequest{MatchID: 10, Content: "   "})
	assert.ErrorIs(t, err, domain.ErrEmptyContent)
}

func TestSendRejectsUnknownKind(t *testing.T) {
	uc, matchRepo, _ := setup()

	matchRepo.On("GetByID", mock.Anything, 10).Return(matchBetween(1, 2, true), nil)

	_, err := uc.Send(context.Background(), 1, &SendRequest{MatchID: 10, Content: "x", Kind: "video"})
	assert.ErrorIs(t, err, domain.ErrInvalidMessageKind)
}

func TestHistoryMarksOwnMessages(t *testing.T) {
	uc, matchRepo, messageRepo := setup()

	matchRepo.On("GetByID", mock.Anything, 10).Return(matchBetween(1, 2, true), nil)
	messageRepo.On("GetByMatch", mock.Anything, 10).Return([]*domain.Message{
		{ID: 1, MatchID: 10, SenderID: 1, ReceiverID: 2, Content: "hey", Kind: domain.MessageText},
		{ID: 2, MatchID: 10, SenderID: 2, ReceiverID: 1, Content: "hi", Kind: domain.MessageText},
	}, nil)

	views, err := uc.History(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "me", views[0].From)
	assert.Equal(t, "them", views[1].From)
}

func TestHistoryRejectsNonMember(t *testing.T) {
	uc, matchRepo, _ := setup()

	matchRepo.On("GetByID", mock.Anything, 10).Return(matchBetween(1, 2, true), nil)

	_, err := uc.History(context.Background(), 5, 10)
	assert.ErrorIs(t, err, domain.ErrNotMatchMember)
}

func TestMarkRead(t *testing.T) {
	uc, matchRepo, messageRepo := setup()

	matchRepo.On("GetByID", mock.Anything, 10).Return(matchBetween(1, 2, true), nil)
	messageRepo.On("MarkRead", mock.Anything, 10, 2).Return(int64(3), nil)

	err := uc.MarkRead(context.Background(), 2, 10)
	assert.NoError(t, err)
}

func TestMarkReadNothingToMarkIsNoError(t *testing.T) {
	uc, matchRepo, messageRepo := setup()

	matchRepo.On("GetByID", mock.Anything, 10).Return(matchBetween(1, 2, true), nil)
	messageRepo.On("MarkRead", mock.Anything, 10, 1).Return(int64(0), nil)

	err := uc.MarkRead(context.Background(), 1, 10)
	assert.NoError(t, err)
}

func TestMarkReadMissingMatch(t *testing.T) {
	uc, matchRepo, _ := setup()

	matchRepo.On("GetByID", mock.Anything, 404).Return(nil, domain.ErrMatchNotFound)

	err := uc.MarkRead(context.Background(), 1, 404)
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}
