package main

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mortgage-calculator/config"
	"mortgage-calculator/logger"
	"mortgage-calculator/repository"
	"mortgage-calculator/service"
)

// errReported marks failures whose message was already shown to the user.
var errReported = errors.New("already reported")

type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "mortgage-calculator",
		Short: "Validate mortgage records and calculate their payments",
		Long: `mortgage-calculator validates mortgage records (principal, rate,
payment frequency and amortization period) and calculates the recurring
payment for each one, either from a comma-separated file or over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to configuration file (default ./config/config.yaml)")

	root.AddCommand(newProcessCmd(a), newServeCmd(a))
	return root
}

func (a *app) init() error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	log, err := logger.NewLogger(cfg.Server.Mode)
	if err != nil {
		return err
	}
	zap.ReplaceGlobals(log)
	a.cfg = cfg
	a.logger = log
	return nil
}

// newService builds the mortgage service from configuration. The returned
// func releases the cache connection.
func (a *app) newService(ctx context.Context) (*service.MortgageService, func(), error) {
	layout, err := a.cfg.Layout()
	if err != nil {
		return nil, nil, err
	}

	cache, closeCache := a.newCache(ctx)
	svc := service.NewMortgageService(
		repository.NewMortgageRepositoryMemory(),
		cache,
		a.logger,
		service.WithCacheTTL(a.cfg.Cache.TTL),
		service.WithLayout(layout),
	)
	return svc, closeCache, nil
}

func (a *app) newCache(ctx context.Context) (repository.CacheRepository, func()) {
	if a.cfg.Cache.Driver != "redis" {
		return repository.NewMemoryCache(), func() {}
	}

	redisCache := repository.NewRedisCache(repository.RedisOptions{
		Addr:     a.cfg.Cache.RedisAddr,
		Password: a.cfg.Cache.RedisPassword,
		DB:       a.cfg.Cache.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		// el cache no es crítico; seguimos con memoria
		a.logger.Warn("redis unavailable, using in-memory cache",
			zap.String("addr", a.cfg.Cache.RedisAddr),
			zap.Error(err),
		)
		_ = redisCache.Close()
		return repository.NewMemoryCache(), func() {}
	}

	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			a.logger.Warn("closing redis cache", zap.Error(err))
		}
	}
}
