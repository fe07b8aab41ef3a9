package handler

import "github.com/nutritrack/backend/internal/interfaces/http/dto"

// APIResponse is the typed success envelope used in the API docs
type APIResponse[T any] struct {
	Success bool           `json:"success"`
	Data    T              `json:"data,omitempty"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
	Meta    *dto.Meta      `json:"meta,omitempty"`
}

// ErrorResponse is the error envelope used in the API docs
type ErrorResponse struct {
	Success bool           `json:"success" example:"false"`
	Error   *dto.ErrorInfo `json:"error,omitempty"`
}

// MessageData carries a human readable confirmation
type MessageData struct {
	Message string `json:"message" example:"Logged out"`
}
