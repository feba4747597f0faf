package users

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrSessionNotFound     = errors.New("session not found")
	ErrInvalidCreditAmount = errors.New("credit amount must be positive")
	ErrInsufficientCredits = errors.New("not enough seat credits")
)
