package shared

type HealthResponse struct {
	Status string `json:"status"`
}

type CreateUserRequest struct {
	Name    string `json:"name"`
	Date    string `json:"date"` // ISO-8601 calendar date; presence only, not parsed
	Service string `json:"service"`
}

// UserPayload is the get-by-id response body. The id is not repeated;
// the caller already has it.
type UserPayload struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Service string `json:"service"`
}

type CreateUserResponse struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Date    string `json:"date"`
	Service string `json:"service"`
}

// ErrorDetail is the body of every non-2xx response.
type ErrorDetail struct {
	Detail string `json:"detail"`
}
