package diet

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/befit/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PsqlRepo struct {
	db *pgxpool.Pool
}

func NewPsqlRepo(db *pgxpool.Pool) *PsqlRepo {
	return &PsqlRepo{
		db: db,
	}
}

func (r *PsqlRepo) Add(ctx context.Context, entry *FoodEntry) (*FoodEntry, error) {
	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}

	_, err := r.db.Exec(
		ctx,
		`INSERT INTO food_entry
				(id, name, calories, carbs_g, protein_g, fat_g, eaten_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7);`,
		entry.ID, entry.Name, entry.Calories, entry.CarbsG, entry.ProteinG, entry.FatG, entry.EatenAt,
	)
	if err != nil {
		if pkg.IsCheckViolationError(err) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFoodEntry, err)
		}
		return nil, fmt.Errorf("insert food entry: %w", err)
	}

	return entry, nil
}

func (r *PsqlRepo) List(ctx context.Context, from, to time.Time) ([]FoodEntry, error) {
	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				id, name, calories, carbs_g, protein_g, fat_g, eaten_at
			FROM food_entry
			WHERE eaten_at >= $1 AND eaten_at < $2
			ORDER BY eaten_at, seq;`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (FoodEntry, error) {
		var e FoodEntry
		err := row.Scan(&e.ID, &e.Name, &e.Calories, &e.CarbsG, &e.ProteinG, &e.FatG, &e.EatenAt)
		return e, err
	})
	if err != nil {
		return nil, fmt.Errorf("collect food entries: %w", err)
	}

	for i := range entries {
		entries[i].EatenAt = entries[i].EatenAt.In(from.Location())
	}
	return entries, nil
}

func (r *PsqlRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM food_entry WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrFoodEntryNotFound
	}
	return nil
}
