package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bookhaven/storefront/internal/db"
)

// Profile is a Storage persisted in SQLite and scoped to one browser profile.
type Profile struct {
	db *db.DB
	id string
}

// NewProfile returns the slots of the given profile.
func NewProfile(database *db.DB, profileID string) *Profile {
	return &Profile{db: database, id: profileID}
}

// ID returns the profile id the slots belong to.
func (p *Profile) ID() string { return p.id }

func (p *Profile) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := p.db.QueryRowContext(ctx,
		`SELECT value FROM kv_slots WHERE profile_id = ? AND key = ?`, p.id, key,
	).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading slot %s: %w", key, err)
	}
	return value, true, nil
}

func (p *Profile) Set(ctx context.Context, key, value string) error {
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO kv_slots (profile_id, key, value, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(profile_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`,
		p.id, key, value,
	)
	if err != nil {
		return fmt.Errorf("writing slot %s: %w", key, err)
	}
	return nil
}

func (p *Profile) Remove(ctx context.Context, key string) error {
	if _, err := p.db.ExecContext(ctx,
		`DELETE FROM kv_slots WHERE profile_id = ? AND key = ?`, p.id, key,
	); err != nil {
		return fmt.Errorf("removing slot %s: %w", key, err)
	}
	return nil
}

// PruneBefore drops the cart of every profile that has not written any slot
// since before. Form flags are never pruned: a submitted form stays
// submitted. Returns the number of deleted rows.
func PruneBefore(ctx context.Context, database *db.DB, before time.Time) (int64, error) {
	res, err := database.ExecContext(ctx, `
		DELETE FROM kv_slots
		WHERE key = ?
		  AND profile_id IN (
			SELECT profile_id FROM kv_slots
			GROUP BY profile_id
			HAVING MAX(updated_at) < ?
		  )`,
		KeyCart, before.UTC().Format(time.DateTime),
	)
	if err != nil {
		return 0, fmt.Errorf("pruning slots: %w", err)
	}
	return res.RowsAffected()
}
