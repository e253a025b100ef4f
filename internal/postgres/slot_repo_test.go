package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/MouhibAssas/HotelRoomsManagement/internal/storage"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *SlotRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewSlotRepository(mock)
}

func TestSlotRepository_Get(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryGetSlot)).
		WithArgs("hotelRooms").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(`[{"id":1}]`))

	got, err := repo.Get(context.Background(), "hotelRooms")
	require.NoError(t, err)
	require.Equal(t, `[{"id":1}]`, got)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepository_GetMissing(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryGetSlot)).
		WithArgs("hotelRooms").
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.Get(context.Background(), "hotelRooms")
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepository_GetError(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(queryGetSlot)).
		WithArgs("hotelRooms").
		WillReturnError(errors.New("conn refused"))

	_, err := repo.Get(context.Background(), "hotelRooms")
	require.Error(t, err)
	require.NotErrorIs(t, err, storage.ErrNotFound)
}

func TestSlotRepository_SetAndDelete(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(queryUpsertSlot)).
		WithArgs("hotelRooms", `[]`).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectExec(regexp.QuoteMeta(queryDeleteSlot)).
		WithArgs("hotelRooms").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	require.NoError(t, repo.Set(context.Background(), "hotelRooms", `[]`))
	require.NoError(t, repo.Delete(context.Background(), "hotelRooms"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSlotRepository_EnsureSchema(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(queryCreateSlotTable)).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, repo.EnsureSchema(context.Background()))
	require.NoError(t, mock.ExpectationsWereMet())
}
