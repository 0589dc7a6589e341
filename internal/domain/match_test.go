package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePair(t *testing.T) {
	a, b := NormalizePair(7, 3)
	assert.Equal(t, 3, a)
	assert.Equal(t, 7, b)

	a, b = NormalizePair(3, 7)
	assert.Equal(t, 3, a)
	assert.Equal(t, 7, b)
}

func TestNewMatchNormalizesSlots(t *testing.T) {
	m := NewMatch(42, 5)
	assert.Equal(t, 5, m.UserAID)
	assert.Equal(t, 42, m.UserBID)
	assert.True(t, m.IsActive)
}

func TestMatchOtherUserID(t *testing.T) {
	m := NewMatch(1, 2)

	other, ok := m.OtherUserID(1)
	assert.True(t, ok)
	assert.Equal(t, 2, other)

	other, ok = m.OtherUserID(2)
	assert.True(t, ok)
	assert.Equal(t, 1, other)

	_, ok = m.OtherUserID(99)
	assert.False(t, ok)
}

func TestParseInteractionKind(t *testing.T) {
	kind, err := ParseInteractionKind("like")
	assert.NoError(t, err)
	assert.Equal(t, InteractionLike, kind)

	kind, err = ParseInteractionKind("pass")
	assert.NoError(t, err)
	assert.Equal(t, InteractionPass, kind)

	_, err = ParseInteractionKind("superlike")
	assert.ErrorIs(t, err, ErrInvalidInteractionKind)
}

func TestParseMessageKind(t *testing.T) {
	kind, err := ParseMessageKind("image")
	assert.NoError(t, err)
	assert.Equal(t, MessageImage, kind)

	_, err = ParseMessageKind("video")
	assert.ErrorIs(t, err, ErrInvalidMessageKind)
}
