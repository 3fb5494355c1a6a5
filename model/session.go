package model

// SessionData is what the server-side session store keeps per session id:
// the owning user and the hosted provider's access token, so logout can
// revoke the provider session too.
type SessionData struct {
	UserID      string `json:"user_id"`
	AccessToken string `json:"access_token"`
}
