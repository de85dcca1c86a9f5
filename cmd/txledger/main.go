package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sahilsutar/txledger/internal/handlers/cli"
	"github.com/sahilsutar/txledger/internal/infra/blockchain/ethereum"
	"github.com/sahilsutar/txledger/internal/infra/storage/postgres"
	"github.com/sahilsutar/txledger/internal/infra/storage/redis"
	"github.com/sahilsutar/txledger/internal/pkg/logger"
	"github.com/sahilsutar/txledger/internal/pkg/telemetry"
	"github.com/sahilsutar/txledger/internal/pkg/transport/http"
	"github.com/sahilsutar/txledger/internal/pkg/transport/jsonrpc"
	"github.com/sahilsutar/txledger/internal/pkg/validator"
	"github.com/sahilsutar/txledger/internal/txhistory"
	"github.com/sahilsutar/txledger/internal/txledger"

	"github.com/kelseyhightower/envconfig"
)

const serviceName = "txledger"

// appConfig holds all environment-driven configuration for the application.
type appConfig struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	OtelEnabled bool   `envconfig:"OTEL_ENABLED" default:"false"`

	NodeRPCEndpoint  string `envconfig:"NODE_RPC_ENDPOINT" required:"true"`
	NativeCoinSymbol string `envconfig:"NATIVE_COIN_SYMBOL" default:"BNB"`

	PostgresURI string `envconfig:"POSTGRES_URI" required:"true"`

	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}

	if cfg.OtelEnabled {
		shutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			return err
		}
		defer shutdown(ctx)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		return err
	}
	defer logger.Sync()

	validator.Init()

	rpcClient := jsonrpc.NewClient(http.NewClient().StandardClient(), cfg.NodeRPCEndpoint)
	chain := ethereum.NewClient(rpcClient)

	storage, err := postgres.NewClient(ctx, cfg.PostgresURI)
	if err != nil {
		return err
	}
	defer storage.Close()

	opts := []txledger.Option{
		txledger.WithNativeSymbol(cfg.NativeCoinSymbol),
	}
	if cfg.RedisAddr != "" {
		guard, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer guard.Close()

		opts = append(opts, txledger.WithIdempotencyGuard(guard))
	}

	var (
		ingestion = txledger.New(chain, chain, storage, opts...)
		history   = txhistory.New(storage)
	)

	return cli.Run(ctx, ingestion, history)
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
