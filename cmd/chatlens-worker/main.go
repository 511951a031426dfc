package main

import (
	"context"
	"flag"
	"time"

	"github.com/joho/godotenv"

	"chatlens/internal/core/analyze"
	"chatlens/internal/modkit"
	"chatlens/internal/modkit/module"
	"chatlens/internal/modkit/scope"
	"chatlens/internal/platform/config"
	"chatlens/internal/platform/logger"
	"chatlens/internal/platform/store"

	"chatlens/internal/adapters/llm"
	pipelinemod "chatlens/internal/services/pipeline/module"
)

func main() {
	_ = godotenv.Load()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	analyzeCfg := root.Prefix("CORE_ANALYZE_")
	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		AppName: "chatlens-worker",
		PG: store.PGConfig{
			Enabled:     true,
			URL:         pgCfg.MustString("DBURL"),
			MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
			SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
			LogSQL:      pgCfg.MayBool("LOG_SQL", true),
		},
	}, store.WithLogger(*l))
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	var (
		fSession  = flag.String("session", "", "process one session and exit")
		fLimit    = flag.Int("limit", 100, "ledger batch size per drain")
		fInterval = flag.Duration("interval", 0, "drain repeatedly at this interval, 0 runs once")
	)
	flag.Parse()

	provider, err := llm.New(llm.Config{
		APIKey: analyzeCfg.MustString("API_KEY"),
		Model:  analyzeCfg.MayString("MODEL", "gpt-4o-mini"),
	})
	if err != nil {
		l.Panic().Err(err).Msg("llm provider init failed")
	}
	analyzer := analyze.New(provider, *l)

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	pm := pipelinemod.New(deps, analyzer)
	module.Register(pm.Name(), pm.Ports())

	runner := pm.Ports().(pipelinemod.Ports).Runner
	ctx := scope.With(context.Background(), map[string]string{"trigger": "worker"})

	if *fSession != "" {
		res, err := runner.ProcessSession(ctx, *fSession)
		if err != nil {
			l.Fatal().Err(err).Msg("session processing failed")
		}
		l.Info().
			Str("session_id", res.SessionID).
			Int("processed", res.ProcessedCount).
			Bool("success", res.Success).
			Msg("session drained")
		return
	}

	for {
		res, err := runner.ProcessPending(ctx, *fLimit)
		if err != nil {
			l.Fatal().Err(err).Msg("pending drain failed")
		}
		l.Info().
			Int64("pending", res.TotalPending).
			Int("retrieved", res.Retrieved).
			Int("processed", res.ProcessedCount).
			Bool("success", res.Success).
			Msg("ledger drained")

		if *fInterval <= 0 {
			return
		}
		time.Sleep(*fInterval)
	}
}
