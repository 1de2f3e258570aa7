package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"bitbucket.org/sotavant/spicerack-skill/internal/config"
	"bitbucket.org/sotavant/spicerack-skill/internal/logger"
	"bitbucket.org/sotavant/spicerack-skill/internal/skill"
	"bitbucket.org/sotavant/spicerack-skill/internal/store"
	"bitbucket.org/sotavant/spicerack-skill/internal/store/dynamo"
	"bitbucket.org/sotavant/spicerack-skill/internal/store/memory"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
	}

	cfg := parseFlags()
	if err := run(cfg); err != nil {
		panic(err)
	}
}

func run(cfg config.Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := context.Background()

	s, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}

	if flagEnsureTable {
		if tm, ok := s.(store.TableManager); ok {
			if err := tm.EnsureTable(ctx); err != nil {
				return err
			}
		}
	}

	router := skill.NewRouter(cfg.AppID, skill.NewDispatcher(s, cfg.SkillName, cfg.InvocationName))
	appInstance := newApp(router)

	logger.Log.Info("Running server",
		zap.String("address", cfg.RunAddr),
		zap.String("store", cfg.StoreKind),
		zap.Bool("app_id_check", cfg.AppID != ""),
	)

	return http.ListenAndServe(cfg.RunAddr, logger.RequestLogger(gzipMiddleware(appInstance.webhook)))
}

func newStore(ctx context.Context, cfg config.Config) (store.Store, error) {
	if cfg.StoreKind == config.StoreMemory {
		return memory.New(), nil
	}

	client, err := dynamo.NewClient(ctx, cfg.Region, cfg.Endpoint)
	if err != nil {
		return nil, err
	}
	return dynamo.New(client, cfg.TableName, dynamo.WithWaitTimeout(cfg.TableWaitTimeout)), nil
}
