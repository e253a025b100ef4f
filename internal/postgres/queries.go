package postgres

const (
	queryCreateSlotTable = `
		CREATE TABLE IF NOT EXISTS kv_slots (
			key        TEXT PRIMARY KEY,
			value      TEXT NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`
	queryGetSlot    = `SELECT value FROM kv_slots WHERE key = $1`
	queryUpsertSlot = `
		INSERT INTO kv_slots (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
	queryDeleteSlot = `DELETE FROM kv_slots WHERE key = $1`
)
