package remote

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFetchRooms_OK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != RoomsPath {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"rooms":[{"id":7,"roomNumber":"401","status":"available","viewType":"sea"}]}`))
	}))
	defer srv.Close()

	c := New(Options{BaseURL: srv.URL + "/", Timeout: time.Second})
	rooms, err := c.FetchRooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	require.Equal(t, int64(7), rooms[0].ID)
	require.Equal(t, "401", rooms[0].RoomNumber)
}

func TestFetchRooms_Non2xx(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := New(Options{BaseURL: srv.URL}).FetchRooms(context.Background())
	require.Error(t, err)
	require.Equal(t, int32(1), calls.Load(), "no retries by default")
}

func TestFetchRooms_MissingRoomsField(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	_, err := New(Options{BaseURL: srv.URL}).FetchRooms(context.Background())
	require.Error(t, err)
}

func TestFetchRooms_Disabled(t *testing.T) {
	_, err := New(Options{}).FetchRooms(context.Background())
	require.ErrorIs(t, err, ErrDisabled)

	var nilClient *Client
	_, err = nilClient.FetchRooms(context.Background())
	require.ErrorIs(t, err, ErrDisabled)
}
