package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/koffe-supply/koffe-be/config"
	"github.com/koffe-supply/koffe-be/internal/app"
	"github.com/koffe-supply/koffe-be/internal/infrastructure/cache"
	"github.com/koffe-supply/koffe-be/internal/infrastructure/database/mongodb"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
)

func main() {
	cliApp := &cli.App{
		Name:   "koffe-be",
		Usage:  "coffee shop catalog and order API",
		Action: serve,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API",
				Action: serve,
			},
			{
				Name:   "ensure-indexes",
				Usage:  "create the unique name indexes and exit",
				Action: ensureIndexes,
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("koffe-be exited")
	}
}

func serve(c *cli.Context) error {
	conf := config.CreateNewConfig()
	app.SetupLogger(conf.LogLevel)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := mongodb.ConnectToMongoDB(ctx, conf.MongoDBConfig)
	if err != nil {
		return err
	}

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	var rdb *redis.Client
	if conf.RedisConfig.Addr != "" {
		rdb, err = cache.ConnectToRedis(ctx, conf.RedisConfig)
		if err != nil {
			log.Warn().Err(err).Msg("Redis unavailable, product cache disabled")
			rdb = nil
		}
	}

	server := app.App{
		DB:     db,
		Redis:  rdb,
		Config: conf,
	}
	server.Initialize()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	select {
	case err = <-errCh:
	case <-ctx.Done():
		log.Info().Msg("Shutting down")
	}

	if stopErr := server.StopServer(); stopErr != nil {
		log.Error().Err(stopErr).Msg("Unclean shutdown")
	}

	return err
}

func ensureIndexes(c *cli.Context) error {
	conf := config.CreateNewConfig()
	app.SetupLogger(conf.LogLevel)

	db, err := mongodb.ConnectToMongoDB(c.Context, conf.MongoDBConfig)
	if err != nil {
		return err
	}
	defer db.Client().Disconnect(context.Background())

	return mongodb.EnsureIndexes(c.Context, db)
}
