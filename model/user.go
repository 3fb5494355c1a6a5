package model

// Identity is the minimal authenticated user the web layer tracks per
// request: the auth provider's user id plus the profile username.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// SignupRequest for account creation (all fields mandatory)
type SignupRequest struct {
	Email       string `json:"email" validate:"required,email"`
	Password    string `json:"password" validate:"required,min=6"`
	Username    string `json:"username" validate:"required"`
	NamaLengkap string `json:"nama_lengkap" validate:"required"`
}

// LoginRequest for password sign-in against the hosted auth provider
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}
