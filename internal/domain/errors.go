package domain

import "errors"

var (
	ErrBotNotFound = errors.New("bot not found")
)
