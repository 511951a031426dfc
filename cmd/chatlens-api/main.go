package main

import (
	"context"

	"github.com/joho/godotenv"

	"chatlens/internal/core/analyze"
	"chatlens/internal/platform/config"
	"chatlens/internal/platform/logger"
	phttp "chatlens/internal/platform/net/http"
	"chatlens/internal/platform/store"

	"chatlens/internal/adapters/llm"
	"chatlens/internal/services/api"
)

func main() {
	// local development convenience, real deployments set env directly
	_ = godotenv.Load()

	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	analyzeCfg := root.Prefix("CORE_ANALYZE_")

	// bring up logging early
	l := logger.Get()

	st, err := store.Open(
		context.Background(),
		store.Config{
			AppName: "chatlens-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", true),
			},
		},
		store.WithLogger(*logger.Get()),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	provider, err := llm.New(llm.Config{
		APIKey: analyzeCfg.MustString("API_KEY"),
		Model:  analyzeCfg.MayString("MODEL", "gpt-4o-mini"),
	})
	if err != nil {
		l.Panic().Err(err).Msg("llm provider init failed")
	}
	analyzer := analyze.New(provider, *l)

	// http server (reads CORE_API_PORT / CORE_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	api.Mount(
		srv.Router(),
		api.Options{
			Config:         root,
			Store:          st,
			Logger:         l,
			Analyzer:       analyzer,
			EnableProfiler: apiCfg.MayBool("PROFILER", true),
		},
	)

	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
