package dto

// ChatRequest body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse successful assistant reply.
type ChatResponse struct {
	Success bool   `json:"success"`
	Reply   string `json:"reply"`
}

// ChatErrorResponse failed chat request. Error carries the cause on processing failures.
type ChatErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
