package domain

import "errors"

var (
	ErrRoomNotFound  = errors.New("room not found")
	ErrInvalidStatus = errors.New("invalid room status")
	ErrInvalidCursor = errors.New("invalid cursor")
)
