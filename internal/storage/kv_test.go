package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

// exerciseKV прогоняет общий контракт слота на любой реализации.
func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "hotelRooms")
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, "hotelRooms", `[{"id":1}]`))
	got, err := kv.Get(ctx, "hotelRooms")
	require.NoError(t, err)
	require.Equal(t, `[{"id":1}]`, got)

	require.NoError(t, kv.Set(ctx, "hotelRooms", `[]`))
	got, err = kv.Get(ctx, "hotelRooms")
	require.NoError(t, err)
	require.Equal(t, `[]`, got)

	require.NoError(t, kv.Delete(ctx, "hotelRooms"))
	_, err = kv.Get(ctx, "hotelRooms")
	require.ErrorIs(t, err, ErrNotFound)

	// удаление отсутствующего ключа не ошибка
	require.NoError(t, kv.Delete(ctx, "hotelRooms"))
}

func TestMemoryKV(t *testing.T) {
	exerciseKV(t, NewMemoryKV())
}

func TestFileKV(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)
	exerciseKV(t, kv)

	// ключи с разделителями пути не выходят за каталог
	require.NoError(t, kv.Set(context.Background(), "../escape", "x"))
	got, err := kv.Get(context.Background(), "../escape")
	require.NoError(t, err)
	require.Equal(t, "x", got)
}

func TestFileKV_EmptyDir(t *testing.T) {
	_, err := NewFileKV("")
	require.Error(t, err)
}

func TestRedisKV(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewRedisClient(RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	kv := NewRedisKV(client)
	require.NoError(t, kv.Ping(context.Background()))
	exerciseKV(t, kv)
}

func TestRedisKV_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := NewRedisClient(RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	_, err := NewRedisKV(client).Get(context.Background(), "hotelRooms")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}
