package service

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/MouhibAssas/HotelRoomsManagement/internal/domain"
)

// Cursor указывает на последний отданный номер страницы.
type Cursor struct {
	ID int64 `json:"id"`
}

func EncodeCursor(c Cursor) (string, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return "", fmt.Errorf("encode cursor: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

func DecodeCursor(s string) (*Cursor, error) {
	if s == "" {
		return nil, nil
	}
	data, err := base64.RawURLEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: decode base64: %v", domain.ErrInvalidCursor, err)
	}
	var c Cursor
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: decode json: %v", domain.ErrInvalidCursor, err)
	}
	return &c, nil
}
