// @title         AI Story Generator API
// @version       0.1.0
// @description   Generates short stories with an LLM and keeps a saved library

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"storyweaver/internal/adapters/openrouter"
	"storyweaver/internal/modkit/repokit"
	"storyweaver/internal/platform/config"
	"storyweaver/internal/platform/logger"
	phttp "storyweaver/internal/platform/net/http"
	"storyweaver/internal/platform/store"

	"storyweaver/internal/services/api"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (CORE_API_*)
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")

	pgCfg := root.Prefix("SERVICE_PGSQL_") // pgCfg lives under SERVICE_PGSQL_*

	// bring up logging early
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// open the platform store (postgres)
	st, err := store.Open(
		ctx,
		store.Config{
			AppName: "storyweaver-api",
			PG: store.PGConfig{
				Enabled:     true,
				URL:         pgCfg.MustString("DBURL"),
				MaxConns:    int32(pgCfg.MayInt("MAX_CONNS", 4)),
				SlowQueryMs: pgCfg.MayInt("SLOW_MS", 500),
				LogSQL:      pgCfg.MayBool("LOG_SQL", false),
			},
		},
		store.WithLogger(*l),
	)
	if err != nil {
		l.Panic().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()

	// fail fast when postgres is not actually reachable
	repokit.MustGuard(ctx, st)

	// LLM provider client (reads OPENROUTER_API_KEY etc)
	completer := openrouter.New(openrouter.FromConf(root.Prefix("OPENROUTER_")))

	// http server (reads CORE_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:        apiCfg,
			Store:         st,
			Logger:        l,
			Completer:     completer,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
			EnableMetrics: apiCfg.MayBool("METRICS", true),
		},
	)

	// run until SIGINT/SIGTERM
	if err := srv.Run(ctx); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
