package repository

import (
	"context"

	"github.com/lumeo-app/lumeo-backend/internal/domain"
)

type ProfileRepository interface {
	GetSummary(ctx context.Context, userID int) (*domain.ProfileSummary, error)
}
