package dto

// ErrorResponse cuerpo de error HTTP: {"error": "<mensaje>"}.
// Available/Requested solo se emiten en rechazos por stock insuficiente.
type ErrorResponse struct {
	Error     string `json:"error"`
	Available *int64 `json:"available,omitempty"`
	Requested *int64 `json:"requested,omitempty"`
}

// NewError construye un ErrorResponse simple.
func NewError(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}
