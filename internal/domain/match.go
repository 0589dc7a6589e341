package domain

import "time"

// Match is the symmetric relationship created when both directions of "like"
// exist between two users. The pair is stored normalized (UserAID < UserBID)
// so the database can enforce at most one match per unordered pair.
type Match struct {
	ID          int       `json:"id" db:"id"`
	UserAID     int       `json:"user_a_id" db:"user_a_id"`
	UserBID     int       `json:"user_b_id" db:"user_b_id"`
	IsActive    bool      `json:"is_active" db:"is_active"`
	Explanation *string   `json:"explanation" db:"explanation"`
	Icebreakers []string  `json:"icebreakers" db:"icebreakers"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}

// NewMatch builds an active match for the unordered pair {a, b}.
func NewMatch(a, b int) *Match {
	a, b = NormalizePair(a, b)
	return &Match{
		UserAID:  a,
		UserBID:  b,
		IsActive: true,
	}
}

// NormalizePair orders two user ids so the smaller one always occupies the
// first slot.
func NormalizePair(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

func (m *Match) HasUser(userID int) bool {
	return m.UserAID == userID || m.UserBID == userID
}

// OtherUserID returns the counterpart of userID within the match.
func (m *Match) OtherUserID(userID int) (int, bool) {
	if m.UserAID == userID {
		return m.UserBID, true
	}
	if m.UserBID == userID {
		return m.UserAID, true
	}
	return 0, false
}
