package weight

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type SqliteRepo struct {
	db *sql.DB
}

func NewSqliteRepo(db *sql.DB) *SqliteRepo {
	return &SqliteRepo{
		db: db,
	}
}

func (r *SqliteRepo) Add(ctx context.Context, sample *Sample) (*Sample, error) {
	if err := sample.Validate(); err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(
		ctx,
		`INSERT INTO weight_sample(taken_at, weight) VALUES(?, ?)`,
		sample.Timestamp.UnixNano(), sample.Weight,
	)
	if err != nil {
		return nil, fmt.Errorf("insert weight sample: %w", err)
	}
	if sample.ID, err = res.LastInsertId(); err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return sample, nil
}

func (r *SqliteRepo) List(ctx context.Context, from, to time.Time) ([]Sample, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT id, taken_at, weight FROM weight_sample
			WHERE taken_at >= ? AND taken_at < ?
			ORDER BY taken_at, id`,
		from.UnixNano(), to.UnixNano(),
	)
	if err != nil {
		return nil, fmt.Errorf("query weight samples: %w", err)
	}
	defer rows.Close()

	var samples []Sample
	for rows.Next() {
		s, err := scanSqliteSample(rows, from.Location())
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return samples, nil
}

func (r *SqliteRepo) Latest(ctx context.Context) (*Sample, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, taken_at, weight FROM weight_sample ORDER BY taken_at DESC, id DESC LIMIT 1`,
	)
	s, err := scanSqliteSample(row, time.Local)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoSamples
		}
		return nil, err
	}
	return &s, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSqliteSample(row rowScanner, loc *time.Location) (Sample, error) {
	var (
		s       Sample
		takenAt int64
	)
	if err := row.Scan(&s.ID, &takenAt, &s.Weight); err != nil {
		return Sample{}, fmt.Errorf("scan weight sample: %w", err)
	}
	s.Timestamp = time.Unix(0, takenAt).In(loc)
	return s, nil
}
