package interaction

import (
	"context"
	"time"

	"github.com/lumeo-app/lumeo-backend/internal/domain"
	"github.com/lumeo-app/lumeo-backend/internal/infrastructure/gemini"
	"github.com/lumeo-app/lumeo-backend/internal/logger"
	"github.com/lumeo-app/lumeo-backend/internal/repository"
)

const enrichmentTimeout = 20 * time.Second

var log = logger.New("interaction")

type InteractionUseCase struct {
	interactionRepo repository.InteractionRepository
	matchRepo       repository.MatchRepository
	profileRepo     repository.ProfileRepository
	geminiClient    *gemini.Client
}

func NewInteractionUseCase(
	interactionRepo repository.InteractionRepository,
	matchRepo repository.MatchRepository,
	profileRepo repository.ProfileRepository,
	geminiClient *gemini.Client,
) *InteractionUseCase {
	return &InteractionUseCase{
		interactionRepo: interactionRepo,
		matchRepo:       matchRepo,
		profileRepo:     profileRepo,
		geminiClient:    geminiClient,
	}
}

// InteractionRequest represents a like/pass action
type InteractionRequest struct {
	TargetUserID int    `json:"target_user_id" binding:"required"`
	Kind         string `json:"kind" binding:"required,interactionkind"`
}

// InteractionResponse represents the recorded interaction and, for likes,
// the outcome of mutual-match detection.
type InteractionResponse struct {
	Interaction *domain.Interaction    `json:"interaction"`
	IsMatch     bool                   `json:"is_match"`
	Match       *domain.Match          `json:"match,omitempty"`
	MatchedUser *domain.ProfileSummary `json:"matched_user,omitempty"`
}

// RecordInteraction appends an interaction and, for likes, synchronously runs
// mutual-match detection. Once the interaction row is written, no later step
// may fail the call: detection or promotion errors degrade to is_match=false.
func (uc *InteractionUseCase) RecordInteraction(ctx context.Context, actorID int, req *InteractionRequest) (*InteractionResponse, error) {
	if actorID == req.TargetUserID {
		return nil, domain.ErrCannotInteractWithSelf
	}

	kind, err := domain.ParseInteractionKind(req.Kind)
	if err != nil {
		return nil, err
	}

	interaction := &domain.Interaction{
		UserID:       actorID,
		TargetUserID: req.TargetUserID,
		Kind:         kind,
	}

	// Duplicate rows for the same pair are allowed; history is kept.
	if err := uc.interactionRepo.Create(ctx, interaction); err != nil {
		return nil, err
	}

	response := &InteractionResponse{
		Interaction: interaction,
		IsMatch:     false,
	}

	if kind == domain.InteractionLike {
		uc.detectMatch(ctx, actorID, req.TargetUserID, response)
	}

	return response, nil
}

// detectMatch checks for a reciprocal like and promotes the pair to a match.
// The interaction insert has already committed, so the detection query
// observes a state at least as fresh as this request's own like.
func (uc *InteractionUseCase) detectMatch(ctx context.Context, actorID, targetID int, response *InteractionResponse) {
	mutual, err := uc.interactionRepo.HasLike(ctx, targetID, actorID)
	if err != nil {
		log.Error("mutual like check failed for users %d/%d: %v", actorID, targetID, err)
		return
	}
	if !mutual {
		return
	}

	match := domain.NewMatch(actorID, targetID)
	created, err := uc.matchRepo.CreateIfAbsent(ctx, match)
	if err != nil {
		log.Error("match promotion failed for users %d/%d: %v", actorID, targetID, err)
		return
	}

	response.IsMatch = true
	response.Match = match

	counterpart, err := uc.profileRepo.GetSummary(ctx, targetID)
	if err != nil {
		// Profile enrichment is best-effort; the match itself stands.
		log.Warn("counterpart profile lookup failed for user %d: %v", targetID, err)
		return
	}
	response.MatchedUser = counterpart

	if created && uc.geminiClient != nil {
		go uc.enrichMatch(match.ID, actorID, targetID)
	}
}

// enrichMatch asks Gemini for an explanation and icebreakers for a freshly
// created match. Runs detached from the request with its own timeout.
func (uc *InteractionUseCase) enrichMatch(matchID, userAID, userBID int) {
	ctx, cancel := context.WithTimeout(context.Background(), enrichmentTimeout)
	defer cancel()

	a, err := uc.profileRepo.GetSummary(ctx, userAID)
	if err != nil {
		log.Warn("enrichment skipped, profile %d unavailable: %v", userAID, err)
		return
	}
	b, err := uc.profileRepo.GetSummary(ctx, userBID)
	if err != nil {
		log.Warn("enrichment skipped, profile %d unavailable: %v", userBID, err)
		return
	}

	explanation, err := uc.geminiClient.GenerateMatchExplanation(ctx, a, b)
	if err != nil {
		log.Warn("match explanation generation failed for match %d: %v", matchID, err)
		return
	}

	icebreakers, err := uc.geminiClient.GenerateIcebreakers(ctx, a, b)
	if err != nil {
		log.Warn("icebreaker generation failed for match %d: %v", matchID, err)
		icebreakers = nil
	}

	if err := uc.matchRepo.UpdateAIFields(ctx, matchID, explanation, icebreakers); err != nil {
		log.Warn("failed to store enrichment for match %d: %v", matchID, err)
	}
}
