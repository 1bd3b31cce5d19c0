package response

// Every endpoint returns one of these two envelopes; callers branch on the
// success flag instead of relying on status codes alone.

type SuccessResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Success bool     `json:"success"`
	Error   string   `json:"error"`
	Issues  []string `json:"issues,omitempty"`
}

func OK(data any) SuccessResponse {
	return SuccessResponse{Success: true, Data: data}
}

func Message(msg string) SuccessResponse {
	return SuccessResponse{Success: true, Message: msg}
}

func Err(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

func Invalid(msg string, issues []string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg, Issues: issues}
}

type TokenResponse struct {
	Success  bool   `json:"success"`
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
