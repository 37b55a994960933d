package weight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/befit/pkg"

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

func (r *PsqlRepo) Add(ctx context.Context, sample *Sample) (*Sample, error) {
	if err := sample.Validate(); err != nil {
		return nil, err
	}

	var id int64
	err := r.db.QueryRow(
		ctx,
		`INSERT INTO weight_sample (taken_at, weight) VALUES ($1, $2) RETURNING id;`,
		sample.Timestamp, sample.Weight,
	).Scan(&id)
	if err != nil {
		if pkg.IsCheckViolationError(err) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidWeight, err)
		}
		return nil, fmt.Errorf("insert weight sample: %w", err)
	}

	sample.ID = id
	return sample, nil
}

func (r *PsqlRepo) List(ctx context.Context, from, to time.Time) ([]Sample, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, taken_at, weight FROM weight_sample
			WHERE taken_at >= $1 AND taken_at < $2
			ORDER BY taken_at, id;`,
		from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	samples, err := pgx.CollectRows(rows, r.scanSample)
	if err != nil {
		return nil, fmt.Errorf("collect weight samples: %w", err)
	}
	return samples, nil
}

func (r *PsqlRepo) Latest(ctx context.Context) (*Sample, error) {
	rows, err := r.db.Query(
		ctx,
		`SELECT id, taken_at, weight FROM weight_sample ORDER BY taken_at DESC, id DESC LIMIT 1;`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sample, err := pgx.CollectOneRow(rows, r.scanSample)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNoSamples
		}
		return nil, fmt.Errorf("latest weight sample: %w", err)
	}
	return &sample, nil
}

func (r *PsqlRepo) scanSample(row pgx.CollectableRow) (Sample, error) {
	var s Sample
	err := row.Scan(&s.ID, &s.Timestamp, &s.Weight)
	return s, err
}
