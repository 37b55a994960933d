// Package integration_testing runs the whole service against postgres and
// redis containers.
package integration_testing

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/2beens/befit/internal"
	"github.com/2beens/befit/internal/config"
	befittesting "github.com/2beens/befit/pkg/testing"

	log "github.com/sirupsen/logrus"
)

const (
	serverPort  = 9100
	metricsPort = "9101"
	serverHost  = "127.0.0.1"

	commandsPerMin = 5
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	postgres *befittesting.Postgres
	redis    *befittesting.Redis
	server   *internal.Server
	teardown []func()
}

func newSuite(ctx context.Context) (_ *Suite, err error) {
	suite := &Suite{
		teardown: make([]func(), 0),
	}
	defer func() {
		if err != nil {
			suite.cleanup()
		}
	}()

	suite.redis, err = befittesting.StartRedis(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to setup redis: %w", err)
	}
	suite.teardown = append(suite.teardown, suite.redis.Close)

	suite.postgres, err = befittesting.StartPostgres(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to setup postgres: %w", err)
	}
	suite.teardown = append(suite.teardown, suite.postgres.Close)

	cfg := getTestConfig(suite.redis.Port, suite.postgres)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:           cfg,
			VersionInfo:      "test-version-info",
			PostgresPassword: suite.postgres.Password,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("new server: %w", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	if err := waitForServer(ctx); err != nil {
		return nil, err
	}
	return suite, nil
}

func waitForServer(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	for {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, serverEndpoint+"/", nil)
		if err != nil {
			return err
		}
		resp, err := http.DefaultClient.Do(req)
		if err == nil {
			resp.Body.Close()
			return nil
		}
		select {
		case <-ctx.Done():
			return fmt.Errorf("server not up: %w", err)
		case <-time.After(100 * time.Millisecond):
		}
	}
}

func (s *Suite) cleanup() {
	if s.server != nil {
		s.server.GracefulShutdown()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	log.Debugln("integration suite cleaned up")
}

func getTestConfig(redisPort string, pg *befittesting.Postgres) *config.Config {
	return &config.Config{
		Environment:            "development",
		Host:                   serverHost,
		Port:                   serverPort,
		PrometheusMetricsHost:  serverHost,
		PrometheusMetricsPort:  metricsPort,
		Storage:                config.StoragePostgres,
		SeedSampleData:         true,
		PostgresHost:           pg.Host,
		PostgresPort:           pg.Port,
		PostgresDBName:         pg.DBName,
		PostgresUser:           pg.User,
		RedisEnabled:           true,
		RedisHost:              "localhost",
		RedisPort:              redisPort,
		CommandRateLimitPerMin: commandsPerMin,
		DashboardCacheTTLSec:   30,
		WeightTrendDays:        7,
		Timezone:               "UTC",
		User:                   config.User{Name: "Alan Nhan", Email: "alan@example.com"},
		DietGoals:              config.DietGoals{Calories: 2000, CarbsG: 250, ProteinG: 150, FatG: 70},
	}
}
