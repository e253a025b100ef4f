package storage

import (
	"context"
	"errors"
)

// ErrNotFound — слот пуст (ключ ни разу не записывался или удалён).
var ErrNotFound = errors.New("storage: not found")

// KV — слот «ключ -> сериализованный текст», в котором лежит вся коллекция.
// Реализации: память (тесты, dev), файлы, Redis, Postgres.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
