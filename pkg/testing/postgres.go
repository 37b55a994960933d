package testing

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/2beens/befit/internal/db"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	postgresTestDB       = "befit_test"
	postgresTestPassword = "postgres"
)

// DockerTestsEnabled reports whether tests that start containers should run.
func DockerTestsEnabled() bool {
	return os.Getenv("BEFIT_DOCKER_TESTS") == "true"
}

// Postgres is a throwaway postgres container with the befit schema applied.
type Postgres struct {
	Pool     *pgxpool.Pool
	Host     string
	Port     string
	DBName   string
	User     string
	Password string

	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
}

func StartPostgres(ctx context.Context) (_ *Postgres, err error) {
	pg := &Postgres{
		Host:     "localhost",
		DBName:   postgresTestDB,
		User:     "postgres",
		Password: postgresTestPassword,
	}
	defer func() {
		if err != nil {
			pg.Close()
		}
	}()

	pg.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}
	if err = pg.dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	pg.resource, err = pg.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_PASSWORD=" + postgresTestPassword,
			"POSTGRES_DB=" + postgresTestDB,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("dockerpool run postgres: %w", err)
	}
	_ = pg.resource.Expire(300)

	pg.Port = pg.resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf(
		"postgres://postgres:%s@localhost:%s/%s?sslmode=disable",
		postgresTestPassword, pg.Port, postgresTestDB,
	)

	pg.dockerPool.MaxWait = 90 * time.Second
	if err = pg.dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	}); err != nil {
		return nil, fmt.Errorf("could not connect to postgres: %w", err)
	}

	pg.Pool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     pg.Host,
		DBPort:     pg.Port,
		DBName:     pg.DBName,
		DBUser:     pg.User,
		DBPassword: pg.Password,
	})
	if err != nil {
		return nil, err
	}
	if err = db.EnsurePostgresSchema(ctx, pg.Pool); err != nil {
		return nil, err
	}
	return pg, nil
}

// Truncate empties every befit table.
func (pg *Postgres) Truncate(ctx context.Context) error {
	_, err := pg.Pool.Exec(ctx, `TRUNCATE food_entry, weight_sample RESTART IDENTITY;`)
	return err
}

func (pg *Postgres) Close() {
	if pg.Pool != nil {
		pg.Pool.Close()
	}
	if pg.resource != nil {
		_ = pg.dockerPool.Purge(pg.resource)
	}
}
