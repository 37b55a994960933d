package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/2beens/befit/internal"
	"github.com/2beens/befit/internal/config"
	"github.com/2beens/befit/internal/logging"
	"github.com/2beens/befit/pkg"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	envFile := flag.String("envfile", ".env", "optional dotenv file with secrets")
	flag.Parse()

	// a missing .env is fine, the environment may already be set
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		fmt.Printf("failed to load env file %s: %s\n", *envFile, err)
	}

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	secrets, err := config.LoadSecrets(ctx)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        secrets.SentryDSN,
		SentryServerName: "befit-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)
	log.Debugf("using storage: [%s]", cfg.Storage)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	if cfg.RedisEnabled && secrets.RedisPassword == "" {
		log.Warnln("redis password not set. use BEFIT_REDIS_PASS")
	}
	if cfg.Storage == config.StoragePostgres && secrets.PostgresPassword == "" {
		log.Warnln("postgres password not set. use BEFIT_POSTGRES_PASS")
	}
	if cfg.Storage == config.StorageSqlite {
		sqliteDir := filepath.Dir(cfg.SqlitePath)
		exists, err := pkg.PathExists(sqliteDir, true)
		if err != nil {
			log.Fatalf("check sqlite dir: %s", err)
		}
		if !exists {
			log.Fatalf("sqlite dir does not exist: %s", sqliteDir)
		}
	}

	if secrets.HoneycombEnabled {
		if secrets.HoneycombAPIKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			RedisPassword:           secrets.RedisPassword,
			PostgresPassword:        secrets.PostgresPassword,
			HoneycombTracingEnabled: secrets.HoneycombEnabled,
			OtelServiceName:         secrets.OtelServiceName,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash assumes the binary runs from the project root.
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(stdout)), nil
}
