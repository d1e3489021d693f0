package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/webstarter/messages"
	"github.com/dmitrymomot/webstarter/modules/users"
	"github.com/dmitrymomot/webstarter/modules/web"
	"github.com/dmitrymomot/webstarter/pkg/config"
	"github.com/dmitrymomot/webstarter/pkg/cookie"
	"github.com/dmitrymomot/webstarter/pkg/httpserver"
	"github.com/dmitrymomot/webstarter/pkg/i18n"
	"github.com/dmitrymomot/webstarter/pkg/logger"
	"github.com/dmitrymomot/webstarter/pkg/requestid"
)

type appConfig struct {
	Server httpserver.Config
	Log    logger.Config
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.NewFromConfig(cfg.Log,
		logger.WithContextExtractors(requestid.LoggerExtractor()),
		logger.WithAttr(slog.String("app", "webstarter")),
	)
	slog.SetDefault(log)

	translator, err := i18n.New(context.Background(), i18n.NewFSSource(messages.FS, "."))
	if err != nil {
		log.Error("failed to load message catalogs", logger.Error(err))
		os.Exit(1)
	}
	log.Info("message catalogs loaded", "locales", translator.Locales())

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.Mount("/api/users", users.Router(users.NewStore()))
	r.Mount("/", web.Router(translator, cookie.New(), web.WithLogger(log)))

	srv := httpserver.NewFromConfig(cfg.Server, httpserver.WithLogger(log))
	if err := srv.Run(context.Background(), r); err != nil {
		log.Error("server stopped", logger.Error(err))
		os.Exit(1)
	}
}
