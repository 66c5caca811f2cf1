package dto

type BookRequest struct {
	SessionID int64 `json:"session_id" binding:"required,gt=0"`
}

type UpdateSessionRequest struct {
	Time     *string `json:"time"`
	Location *string `json:"location"`
}
