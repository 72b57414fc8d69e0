package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/carousel/internal/db"
)

// Position is the banner state restored on the next start.
type Position struct {
	FirstIndex int  // first visible item index
	ItemCount  int  // item count when saved; a different count invalidates FirstIndex
	Autoplay   bool // whether autoplay was running
	UpdatedAt  time.Time
}

// RestoreIndex returns the index to scroll to for itemCount items, or 0 when
// the saved position no longer applies.
func (p *Position) RestoreIndex(itemCount int) int {
	if p == nil || p.ItemCount != itemCount || p.FirstIndex < 0 || p.FirstIndex >= itemCount {
		return 0
	}
	return p.FirstIndex
}

func getPosition(db *sql.DB) (*Position, error) {
	row := db.QueryRow(`
		SELECT first_index, item_count, autoplay, updated_at
		FROM position_state WHERE id = 1
	`)

	var p Position
	var autoplay sql.NullInt64
	var updatedAt int64
	err := row.Scan(&p.FirstIndex, &p.ItemCount, &autoplay, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	p.Autoplay = dbutil.NullInt64Value(autoplay) != 0
	p.UpdatedAt = time.Unix(updatedAt, 0)
	return &p, nil
}

func savePosition(db *sql.DB, p Position) error {
	updatedAt := p.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now()
	}
	autoplay := 0
	if p.Autoplay {
		autoplay = 1
	}

	return dbutil.WithTx(db, func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO position_state (id, first_index, item_count, autoplay, updated_at)
			VALUES (1, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				first_index = excluded.first_index,
				item_count = excluded.item_count,
				autoplay = excluded.autoplay,
				updated_at = excluded.updated_at
		`, p.FirstIndex, p.ItemCount, autoplay, updatedAt.Unix())
		return err
	})
}
