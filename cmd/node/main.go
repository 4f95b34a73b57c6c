package main

import (
	"context"

	"github.com/jackc/pgx/v4"
	"github.com/picochain/go-node/internal/log"
	"github.com/picochain/go-node/internal/pg"
	"github.com/picochain/go-node/pkg/api"
	"github.com/picochain/go-node/pkg/config"
	"github.com/picochain/go-node/pkg/node"
)

func main() {
	cfg, err := config.ReadConfigFromFile("dev-config")
	if err != nil {
		panic(err)
	}
	log.SetLevelStr(cfg.LogLevel)

	ctx := context.Background()

	conn, err := connect(ctx, cfg)
	if err != nil {
		panic(err)
	}

	chainNode, err := node.New(ctx, cfg, conn)
	if err != nil {
		panic(err)
	}

	server, err := api.NewServer(cfg, chainNode, conn)
	if err != nil {
		panic(err)
	}

	go func() {
		if err := chainNode.Run(); err != nil {
			log.Fatalw("mining loop stopped", "err", err)
		}
	}()

	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

func connect(ctx context.Context, cfg *config.Config) (*pgx.Conn, error) {
	if cfg.PostgresDSN == "" {
		log.Info("postgres_dsn is empty, running without the block archive")
		return nil, nil
	}
	return pg.NewConn(ctx, cfg.PostgresDSN)
}
