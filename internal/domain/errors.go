package domain

import "errors"

var (
	ErrUnauthenticated        = errors.New("authentication required")
	ErrCannotInteractWithSelf = errors.New("cannot interact with yourself")
	ErrInvalidInteractionKind = errors.New("invalid interaction kind")
	ErrInvalidMessageKind     = errors.New("invalid message kind")
	ErrEmptyContent           = errors.New("message content is empty")
	ErrMatchNotFound          = errors.New("match not found")
	ErrNotMatchMember         = errors.New("user is not a member of this match")
	ErrMessageNotFound        = errors.New("message not found")
	ErrProfileNotFound        = errors.New("profile not found")
)
