package model

// Flash is a one-shot user-facing message rendered on the next page load.
type Flash struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}
