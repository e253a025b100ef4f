package postgres

import (
	"context"
	"errors"

	"github.com/MouhibAssas/HotelRoomsManagement/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier — общий срез *pgxpool.Pool / pgx.Tx, чтобы слот можно было
// использовать и внутри транзакции.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SlotRepository хранит сериализованную коллекцию в таблице kv_slots.
type SlotRepository struct {
	db querier
}

var _ storage.KV = (*SlotRepository)(nil)

func NewSlotRepository(db querier) *SlotRepository {
	return &SlotRepository{db: db}
}

func (r *SlotRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, queryCreateSlotTable)
	return err
}

func (r *SlotRepository) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := r.db.QueryRow(ctx, queryGetSlot, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", storage.ErrNotFound
		}
		return "", err
	}
	return value, nil
}

func (r *SlotRepository) Set(ctx context.Context, key, value string) error {
	_, err := r.db.Exec(ctx, queryUpsertSlot, key, value)
	return err
}

func (r *SlotRepository) Delete(ctx context.Context, key string) error {
	_, err := r.db.Exec(ctx, queryDeleteSlot, key)
	return err
}
