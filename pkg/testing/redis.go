package testing

import (
	"context"
	"fmt"
	"net"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
)

// GetRedisClientAndCtx connects to a live redis for tests that need one.
// The test is skipped unless BEFIT_REDIS_TESTS=true.
func GetRedisClientAndCtx(t *testing.T) (context.Context, *redis.Client) {
	t.Helper()

	if os.Getenv("BEFIT_REDIS_TESTS") != "true" {
		t.Skip("live redis tests disabled, set BEFIT_REDIS_TESTS=true")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	t.Cleanup(cancel)

	redisHost := os.Getenv("REDIS_HOST")
	if redisHost == "" {
		redisHost = "localhost"
	}
	redisPort := os.Getenv("REDIS_PORT")
	if redisPort == "" {
		redisPort = "6379"
	}
	t.Logf("using redis: [%s:%s]", redisHost, redisPort)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(redisHost, redisPort),
		Password: os.Getenv("BEFIT_REDIS_PASS"),
		DB:       0, // use default DB
	})

	pingRes, err := rdb.Ping(ctx).Result()
	require.NoError(t, err)
	t.Logf("redis ping res: %s", pingRes)

	return ctx, rdb
}

// Redis is a throwaway redis container.
type Redis struct {
	Client     *redis.Client
	Port       string
	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
}

func StartRedis(ctx context.Context) (_ *Redis, err error) {
	r := &Redis{}
	defer func() {
		if err != nil {
			r.Close()
		}
	}()

	r.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}
	if err = r.dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	r.resource, err = r.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Tag:        "7",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return nil, fmt.Errorf("run redis: %w", err)
	}
	_ = r.resource.Expire(300)
	r.Port = r.resource.GetPort("6379/tcp")

	r.Client = redis.NewClient(&redis.Options{
		Addr: net.JoinHostPort("localhost", r.Port),
	})
	if err = r.dockerPool.Retry(func() error {
		return r.Client.Ping(ctx).Err()
	}); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	return r, nil
}

func (r *Redis) Close() {
	if r.Client != nil {
		_ = r.Client.Close()
	}
	if r.resource != nil {
		_ = r.dockerPool.Purge(r.resource)
	}
}
