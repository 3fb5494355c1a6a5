package model

// Profile extends a bare auth identity with display data. Stored in the
// hosted `profiles` table, keyed by user_id.
type Profile struct {
	UserID      string  `json:"user_id"`
	Username    string  `json:"username"`
	NamaLengkap string  `json:"nama_lengkap"`
	AvatarURL   *string `json:"avatar_url"`
}

type ProfileUpdateRequest struct {
	Username    string `json:"username" validate:"required"`
	NamaLengkap string `json:"nama_lengkap" validate:"required"`
	AvatarURL   string `json:"avatar_url" validate:"omitempty,url"`
}
