package domain

// ProfileSummary is the read-only slice of a user profile this service
// needs for match, conversation and activity views. Profile CRUD itself
// lives in another service.
type ProfileSummary struct {
	UserID      int      `json:"user_id" db:"user_id"`
	DisplayName string   `json:"display_name" db:"display_name"`
	AvatarURL   *string  `json:"avatar_url" db:"avatar_url"`
	Bio         *string  `json:"bio" db:"bio"`
	Interests   []string `json:"interests" db:"interests"`
}
