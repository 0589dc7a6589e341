package domain

import "time"

type InteractionKind string

const (
	InteractionLike InteractionKind = "like"
	InteractionPass InteractionKind = "pass"
)

// ParseInteractionKind validates a raw kind value coming from the boundary.
func ParseInteractionKind(raw string) (InteractionKind, error) {
	switch InteractionKind(raw) {
	case InteractionLike, InteractionPass:
		return InteractionKind(raw), nil
	}
	return "", ErrInvalidInteractionKind
}

// Interaction is a directional like/pass event from one user toward another.
// Rows are append-only; repeated interactions for the same pair are allowed
// and kept as history.
type Interaction struct {
	ID           int             `json:"id" db:"id"`
	UserID       int             `json:"user_id" db:"user_id"`
	TargetUserID int             `json:"target_user_id" db:"target_user_id"`
	Kind         InteractionKind `json:"kind" db:"kind"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
}

func (i *Interaction) IsLike() bool {
	return i.Kind == InteractionLike
}
