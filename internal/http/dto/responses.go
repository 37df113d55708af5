package dto

import "github.com/izelavimelek/cliply/internal/apperr"

type AuthResponse struct {
	Token string `json:"token"`
	User  any    `json:"user"`
}

type ErrorResponse struct {
	Error     string              `json:"error"`
	Fields    []apperr.FieldError `json:"fields,omitempty"`
	RequestID string              `json:"request_id,omitempty"`
}

type SuccessResponse struct {
	OK   bool `json:"ok"`
	Data any  `json:"data,omitempty"`
}

type CompletionResponse struct {
	Campaign  any             `json:"campaign"`
	Completed int             `json:"completed"`
	Total     int             `json:"total"`
	Sections  map[string]bool `json:"sections"`
}

type PaymentStatusResponse struct {
	HasPaymentMethod bool `json:"hasPaymentMethod"`
}

type AuthorizeURLResponse struct {
	URL string `json:"url"`
}
