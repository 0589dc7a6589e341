// Package mocks provides testify-based stand-ins for the repository
// interfaces, shared by the usecase and handler tests.
package mocks

import (
	"context"

	"github.com/lumeo-app/lumeo-backend/internal/domain"
	"github.com/stretchr/testify/mock"
)

type InteractionRepository struct {
	mock.Mock
}

func (m *InteractionRepository) Create(ctx context.Context, interaction *domain.Interaction) error {
	args := m.Called(ctx, interaction)
	return args.Error(0)
}

func (m *InteractionRepository) HasLike(ctx context.Context, userID, targetUserID int) (bool, error) {
	args := m.Called(ctx, userID, targetUserID)
	return args.Bool(0), args.Error(1)
}

func (m *InteractionRepository) GetLikesReceived(ctx context.Context, userID int, limit int) ([]*domain.Interaction, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Interaction), args.Error(1)
}

func (m *InteractionRepository) CountGiven(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *InteractionRepository) CountLikesGiven(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *InteractionRepository) CountLikesReceived(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

type MatchRepository struct {
	mock.Mock
}

func (m *MatchRepository) CreateIfAbsent(ctx context.Context, match *domain.Match) (bool, error) {
	args := m.Called(ctx, match)
	return args.Bool(0), args.Error(1)
}

func (m *MatchRepository) GetByID(ctx context.Context, id int) (*domain.Match, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MatchRepository) GetByUsers(ctx context.Context, userAID, userBID int) (*domain.Match, error) {
	args := m.Called(ctx, userAID, userBID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Match), args.Error(1)
}

func (m *MatchRepository) GetActiveForUser(ctx context.Context, userID int) ([]*domain.Match, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Match), args.Error(1)
}

func (m *MatchRepository) GetRecentForUser(ctx context.Context, userID int, limit int) ([]*domain.Match, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Match), args.Error(1)
}

func (m *MatchRepository) CountActiveForUser(ctx context.Context, userID int) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MatchRepository) SetActive(ctx context.Context, id int, isActive bool) error {
	args := m.Called(ctx, id, isActive)
	return args.Error(0)
}

func (m *MatchRepository) UpdateAIFields(ctx context.Context, id int, explanation string, icebreakers []string) error {
	args := m.Called(ctx, id, explanation, icebreakers)
	return args.Error(0)
}

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) Create(ctx context.Context, message *domain.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MessageRepository) GetByMatch(ctx context.Context, matchID int) ([]*domain.Message, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Message), args.Error(1)
}

func (m *MessageRepository) GetLatestByMatch(ctx context.Context, matchID int) (*domain.Message, error) {
	args := m.Called(ctx, matchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Message), args.Error(1)
}

func (m *MessageRepository) MarkRead(ctx context.Context, matchID, receiverID int) (int64, error) {
	args := m.Called(ctx, matchID, receiverID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MessageRepository) CountUnread(ctx context.Context, receiverID int) (int, error) {
	args := m.Called(ctx, receiverID)
	return args.Int(0), args.Error(1)
}

func (m *MessageRepository) CountUnreadByMatch(ctx context.Context, matchID, receiverID int) (int, error) {
	args := m.Called(ctx, matchID, receiverID)
	return args.Int(0), args.Error(1)
}

type ProfileRepository struct {
	mock.Mock
}

func (m *ProfileRepository) GetSummary(ctx context.Context, userID int) (*domain.ProfileSummary, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProfileSummary), args.Error(1)
}
