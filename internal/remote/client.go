package remote

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MouhibAssas/HotelRoomsManagement/internal/domain"

	"github.com/go-resty/resty/v2"
)

// RoomsPath — эндпоинт, с которого подтягиваются номера, если слот пуст.
const RoomsPath = "/api/rooms"

var ErrDisabled = errors.New("remote: base url not configured")

// RoomsResponse — формат ответа /api/rooms.
type RoomsResponse struct {
	Rooms []domain.Room `json:"rooms"`
}

type Options struct {
	BaseURL    string
	Timeout    time.Duration
	RetryCount int
}

type Client struct {
	http    *resty.Client
	enabled bool
}

func New(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = 5 * time.Second
	}
	base := strings.TrimRight(strings.TrimSpace(opts.BaseURL), "/")

	c := resty.New().
		SetBaseURL(base).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")
	if opts.RetryCount > 0 {
		c.SetRetryCount(opts.RetryCount).
			SetRetryWaitTime(200 * time.Millisecond).
			SetRetryMaxWaitTime(2 * time.Second)
	}

	return &Client{http: c, enabled: base != ""}
}

// FetchRooms забирает коллекцию с удалённого /api/rooms.
// Любой не-2xx ответ считается ошибкой.
func (c *Client) FetchRooms(ctx context.Context) ([]domain.Room, error) {
	if c == nil || !c.enabled {
		return nil, ErrDisabled
	}

	var out RoomsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&out).
		Get(RoomsPath)
	if err != nil {
		return nil, fmt.Errorf("remote: get %s: %w", RoomsPath, err)
	}
	if !resp.IsSuccess() {
		return nil, fmt.Errorf("remote: get %s: unexpected status %d", RoomsPath, resp.StatusCode())
	}
	if out.Rooms == nil {
		return nil, fmt.Errorf("remote: get %s: response has no rooms field", RoomsPath)
	}
	return out.Rooms, nil
}
