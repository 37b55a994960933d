package diet

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SqliteRepo stores entries in a local sqlite file, timestamps as unix nanos.
type SqliteRepo struct {
	db *sql.DB
}

func NewSqliteRepo(db *sql.DB) *SqliteRepo {
	return &SqliteRepo{
		db: db,
	}
}

func (r *SqliteRepo) Add(ctx context.Context, entry *FoodEntry) (*FoodEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO food_entry(id, name, calories, carbs_g, protein_g, fat_g, eaten_at) VALUES(?, ?, ?, ?, ?, ?, ?)`,
		entry.ID.String(), entry.Name, entry.Calories, entry.CarbsG, entry.ProteinG, entry.FatG, entry.EatenAt.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("insert food entry: %w", err)
	}
	return entry, nil
}

func (r *SqliteRepo) List(ctx context.Context, from, to time.Time) ([]FoodEntry, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, name, calories, carbs_g, protein_g, fat_g, eaten_at
			FROM food_entry
			WHERE eaten_at >= ? AND eaten_at < ?
			ORDER BY eaten_at, seq`,
		from.UnixNano(), to.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("query food entries: %w", err)
	}
	defer rows.Close()

	var entries []FoodEntry
	for rows.Next() {
		var (
			e       FoodEntry
			id      string
			eatenAt int64
		)
		if err := rows.Scan(&id, &e.Name, &e.Calories, &e.CarbsG, &e.ProteinG, &e.FatG, &eatenAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("parse food entry id %q: %w", id, err)
		}
		e.EatenAt = time.Unix(0, eatenAt).In(from.Location())
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *SqliteRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM food_entry WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("delete food entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return ErrFoodEntryNotFound
	}
	return nil
}
