package match

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

func activeMatch(id, a, b int) *domain.Match {
	return &domain.Match{ID: id, UserAID: a, UserBID: b, IsActive: true, CreatedAt: time.Now()}
}

func TestListMatchesEnrichesCounterparts(t *testing.T) {
	matchRepo := new(mocks.MatchRepository)
	profileRepo := new(mocks.ProfileRepository)
	uc := NewMatchUseCase(matchRepo, profileRepo)

	matchRepo.On("GetActiveForUser", mock.Anything, 1).Return([]*domain.Match{
		activeMatch(10, 1, 2),
		activeMatch(11, 1, 3),
	}, nil)
	profileRepo.On("GetSummary", mock.Anything, 2).
		Return(&domain.ProfileSummary{UserID: 2, DisplayName: "Sam"}, nil)
	profileRepo.On("GetSummary", mock.Anything, 3).
		Return(&domain.ProfileSummary{UserID: 3, DisplayName: "Alex"}, nil)

	result, err := uc.ListMatches(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "Sam", result[0].Counterpart.DisplayName)
	assert.Equal(t, "Alex", result[1].Counterpart.DisplayName)
}

func TestListMatchesDropsUnresolvableProfiles(t *testing.T) {
	matchRepo := new(mocks.MatchRepository)
	profileRepo := new(mocks.ProfileRepository)
	uc := NewMatchUseCase(matchRepo, profileRepo)

	matchRepo.On("GetActiveForUser", mock.Anything, 1).Return([]*domain.Match{
		activeMatch(10, 1, 2),
		activeMatch(11, 1, 3),
	}, nil)
	profileRepo.On("GetSummary", mock.Anything, 2).Return(nil, domain.ErrProfileNotFound)
	profileRepo.On("GetSummary", mock.Anything, 3).
		Return(&domain.ProfileSummary{UserID: 3, DisplayName: "Alex"}, nil)

	result, err := uc.ListMatches(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 11, result[0].Match.ID)
}

func TestUnmatchByMember(t *testing.T) {
	matchRepo := new(mocks.MatchRepository)
	profileRepo := new(mocks.ProfileRepository)
	uc := NewMatchUseCase(matchRepo, profileRepo)

	matchRepo.On("GetByID", mock.Anything, 10).Return(activeMatch(10, 1, 2), nil)
	matchRepo.On("SetActive", mock.Anything, 10, false).Return(nil)

	err := uc.Unmatch(context.Background(), 2, 10)
	assert.NoError(t, err)
	matchRepo.AssertCalled(t, "SetActive", mock.Anything, 10, false)
}

func TestUnmatchRejectsNonMember(t *testing.T) {
	matchRepo := new(mocks.MatchRepository)
	profileRepo := new(mocks.ProfileRepository)
	uc := NewMatchUseCase(matchRepo, profileRepo)

	matchRepo.On("GetByID", mock.Anything, 10).Return(activeMatch(10, 1, 2), nil)

	err := uc.Unmatch(context.Background(), 99, 10)
	assert.ErrorIs(t, err, domain.ErrNotMatchMember)
	matchRepo.AssertNotCalled(t, "SetActive", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnmatchMissingMatch(t *testing.T) {
	matchRepo := new(mocks.MatchRepository)
	profileRepo := new(mocks.ProfileRepository)
	uc := NewMatchUseCase(matchRepo, profileRepo)

	matchRepo.On("GetByID", mock.Anything, 404).Return(nil, domain.ErrMatchNotFound)

	err := uc.Unmatch(context.Background(), 1, 404)
	assert.ErrorIs(t, err, domain.ErrMatchNotFound)
}
