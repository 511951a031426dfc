package main

import (
	"context"
	"flag"

	"github.com/joho/godotenv"

	"chatlens/internal/modkit"
	"chatlens/internal/modkit/module"
	"chatlens/internal/platform/config"
	"chatlens/internal/platform/logger"
	"chatlens/internal/platform/store"

	messagesmod "chatlens/internal/services/messages/module"
)

func main() {
	_ = godotenv.Load()

	root := config.New()
	pgCfg := root.Prefix("SERVICE_PGSQL_")
	l := logger.Get()

	st, err := store.Open(context.Background(), store.Config{
		AppName: "chatlens-backfill",
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
		fSeed  = flag.Bool("seed", true, "enqueue stored messages that were never analyzed")
		fPurge = flag.Bool("purge", false, "delete consumed ledger rows after seeding")
	)
	flag.Parse()

	deps := modkit.Deps{
		Cfg: root,
		PG:  st.PG,
		Log: *l,
	}

	mm := messagesmod.New(deps)
	module.Register(mm.Name(), mm.Ports())

	maint := mm.Ports().(messagesmod.Ports).Maintainer
	ctx := context.Background()

	if *fSeed {
		n, err := maint.SeedPending(ctx)
		if err != nil {
			l.Fatal().Err(err).Msg("seed failed")
		}
		l.Info().Int64("enqueued", n).Msg("ledger seeded")
	}

	if *fPurge {
		n, err := maint.PurgeProcessed(ctx)
		if err != nil {
			l.Fatal().Err(err).Msg("purge failed")
		}
		l.Info().Int64("deleted", n).Msg("ledger purged")
	}
}
