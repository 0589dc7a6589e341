package stats

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/lumeo-app/lumeo-backend/internal/domain"
	"github.com/lumeo-app/lumeo-backend/internal/logger"
	"github.com/lumeo-app/lumeo-backend/internal/repository"
	"github.com/redis/go-redis/v9"
)

const (
	statsCacheTTL      = 30 * time.Second
	recentLikesLimit   = 5
	recentMatchesLimit = 5
	activityLimit      = 10
)

var log = logger.New("stats")

type StatsUseCase struct {
	interactionRepo repository.InteractionRepository
	matchRepo       repository.MatchRepository
	messageRepo     repository.MessageRepository
	profileRepo     repository.ProfileRepository
	cache           *redis.Client
}

func NewStatsUseCase(
	interactionRepo repository.InteractionRepository,
	matchRepo repository.MatchRepository,
	messageRepo repository.MessageRepository,
	profileRepo repository.ProfileRepository,
	cache *redis.Client,
) *StatsUseCase {
	return &StatsUseCase{
		interactionRepo: interactionRepo,
		matchRepo:       matchRepo,
		messageRepo:     messageRepo,
		profileRepo:     profileRepo,
		cache:           cache,
	}
}

// Stats aggregates per-user counters. Every counter is computed
// independently and defaults to 0 on its own fetch error.
type Stats struct {
	Matches        int `json:"matches"`
	LikesGiven     int `json:"likes_given"`
	LikesReceived  int `json:"likes_received"`
	Interactions   int `json:"interactions"`
	UnreadMessages int `json:"unread_messages"`
	MatchRate      int `json:"match_rate"`
}

// ActivityEntry is one row of the recent-activity feed.
type ActivityEntry struct {
	Type string                 `json:"type"`
	User *domain.ProfileSummary `json:"user"`
	Time time.Time              `json:"time"`
}

// GetStats computes the user's counters, served from a short-lived Redis
// cache when one is configured.
func (uc *StatsUseCase) GetStats(ctx context.Context, userID int) (*Stats, error) {
	key := fmt.Sprintf("stats:user:%d", userID)

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, key).Result(); err == nil {
			var s Stats
			if err := json.Unmarshal([]byte(cached), &s); err == nil {
				return &s, nil
			}
		}
	}

	s := &Stats{}
	s.Matches = uc.count(ctx, userID, "active matches", uc.matchRepo.CountActiveForUser)
	s.LikesGiven = uc.count(ctx, userID, "likes given", uc.interactionRepo.CountLikesGiven)
	s.LikesReceived = uc.count(ctx, userID, "likes received", uc.interactionRepo.CountLikesReceived)
	s.Interactions = uc.count(ctx, userID, "interactions given", uc.interactionRepo.CountGiven)
	s.UnreadMessages = uc.count(ctx, userID, "unread messages", uc.messageRepo.CountUnread)

	denominator := s.LikesGiven
	if denominator < 1 {
		denominator = 1
	}
	s.MatchRate = int(math.Round(float64(s.Matches) / float64(denominator) * 100))

	if uc.cache != nil {
		if data, err := json.Marshal(s); err == nil {
			if err := uc.cache.Set(ctx, key, data, statsCacheTTL).Err(); err != nil {
				log.Warn("stats cache write failed for user %d: %v", userID, err)
			}
		}
	}

	return s, nil
}

// count wraps one counter query; a failure logs and yields 0 so the other
// counters still come back.
func (uc *StatsUseCase) count(ctx context.Context, userID int, name string, fetch func(context.Context, int) (int, error)) int {
	n, err := fetch(ctx, userID)
	if err != nil {
		log.Warn("%s count failed for user %d: %v", name, userID, err)
		return 0
	}
	return n
}

// GetRecentActivity merges the most recent likes received and matches into a
// single feed, newest first, capped at activityLimit entries.
func (uc *StatsUseCase) GetRecentActivity(ctx context.Context, userID int) ([]*ActivityEntry, error) {
	entries := make([]*ActivityEntry, 0, recentLikesLimit+recentMatchesLimit)

	likes, err := uc.interactionRepo.GetLikesReceived(ctx, userID, recentLikesLimit)
	if err != nil {
		log.Warn("recent likes lookup failed for user %d: %v", userID, err)
	}
	for _, like := range likes {
		liker, err := uc.profileRepo.GetSummary(ctx, like.UserID)
		if err != nil {
			continue
		}
		entries = append(entries, &ActivityEntry{
			Type: "like_received",
			User: liker,
			Time: like.CreatedAt,
		})
	}

	matches, err := uc.matchRepo.GetRecentForUser(ctx, userID, recentMatchesLimit)
	if err != nil {
		log.Warn("recent matches lookup failed for user %d: %v", userID, err)
	}
	for _, m := range matches {
		otherID, ok := m.OtherUserID(userID)
		if !ok {
			continue
		}
		counterpart, err := uc.profileRepo.GetSummary(ctx, otherID)
		if err != nil {
			continue
		}
		entries = append(entries, &ActivityEntry{
			Type: "match",
			User: counterpart,
			Time: m.CreatedAt,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Time.After(entries[j].Time)
	})

	if len(entries) > activityLimit {
		entries = entries[:activityLimit]
	}

	return entries, nil
}
