package users

type SessionResponse struct {
	SessionID string `json:"session_id"`
	User      User   `json:"user"`
}
