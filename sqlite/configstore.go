package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

// ConfigStore implements queuectl.ConfigStore on top of bun.
type ConfigStore struct {
	db *bun.DB
}

// NewConfigStore creates a bun-backed ConfigStore. db must already be
// initialized with InitDB.
func NewConfigStore(db *bun.DB) *ConfigStore {
	return &ConfigStore{db: db}
}

// ConfigGet returns the value stored for key, or def if unset.
func (c *ConfigStore) ConfigGet(ctx context.Context, key, def string) (string, error) {
	var m configModel
	err := c.db.NewSelect().
		Model(&m).
		Where("key = ?", key).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return def, nil
		}
		return "", err
	}
	return m.Value, nil
}

// ConfigSet upserts key to value.
func (c *ConfigStore) ConfigSet(ctx context.Context, key, value string) error {
	_, err := c.db.NewInsert().
		Model(&configModel{Key: key, Value: value}).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Exec(ctx)
	return err
}
