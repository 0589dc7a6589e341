package match

import (
	"context"

	"github.com/lumeo-app/lumeo-backend/internal/domain"
	"github.com/lumeo-app/lumeo-backend/internal/logger"
	"github.com/lumeo-app/lumeo-backend/internal/repository"
)

var log = logger.New("match")

type MatchUseCase struct {
	matchRepo   repository.MatchRepository
	profileRepo repository.ProfileRepository
}

func NewMatchUseCase(
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
) *MatchUseCase {
	return &MatchUseCase{
		matchRepo:   matchRepo,
		profileRepo: profileRepo,
	}
}

// MatchWithProfile pairs a match with the counterpart's profile summary.
type MatchWithProfile struct {
	Match       *domain.Match          `json:"match"`
	Counterpart *domain.ProfileSummary `json:"counterpart"`
}

// ListMatches returns the user's active matches, newest first, each with the
// counterpart's profile. A match whose counterpart profile cannot be loaded
// is dropped from the result rather than failing the call.
func (uc *MatchUseCase) ListMatches(ctx context.Context, userID int) ([]*MatchWithProfile, error) {
	matches, err := uc.matchRepo.GetActiveForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*MatchWithProfile, 0, len(matches))
	for _, m := range matches {
		otherID, ok := m.OtherUserID(userID)
		if !ok {
			continue
		}

		counterpart, err := uc.profileRepo.GetSummary(ctx, otherID)
		if err != nil {
			log.Warn("skipping match %d, profile %d unavailable: %v", m.ID, otherID, err)
			continue
		}

		result = append(result, &MatchWithProfile{
			Match:       m,
			Counterpart: counterpart,
		})
	}

	return result, nil
}

// Unmatch soft-deletes a match. Either member may do it; the row is kept so
// the pair can never be re-promoted by the unique index.
func (uc *MatchUseCase) Unmatch(ctx context.Context, userID, matchID int) error {
	m, err := uc.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return err
	}
	if !m.HasUser(userID) {
		return domain.ErrNotMatchMember
	}

	return uc.matchRepo.SetActive(ctx, matchID, false)
}
