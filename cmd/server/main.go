package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/rapidsites/intake/internal/handler"
	"github.com/rapidsites/intake/internal/mailer"
	"github.com/rapidsites/intake/pkg/config"
	"github.com/rapidsites/intake/pkg/httpserver"
	"github.com/rapidsites/intake/pkg/logger"
)

func main() {
	var logCfg logger.Config
	config.MustLoad(&logCfg)
	log := logger.NewFromConfig(logCfg, logger.WithService("intake"))
	logger.SetAsDefault(log)

	var (
		mailerCfg mailer.Config
		intakeCfg handler.Config
		serverCfg httpserver.Config
	)
	config.MustLoad(&mailerCfg)
	config.MustLoad(&intakeCfg)
	config.MustLoad(&serverCfg)

	sender, err := mailer.New(mailerCfg)
	if err != nil {
		log.Error("failed to configure mail delivery", logger.Error(err))
		os.Exit(1)
	}
	log.Info("mail delivery configured", slog.String("driver", mailerCfg.Driver))

	intake := handler.NewIntake(intakeCfg, sender, log)
	router := handler.NewRouter(log, intake)

	srv := httpserver.New(serverCfg, log)
	if err := srv.Run(context.Background(), router); err != nil {
		log.Error("server exited with error", logger.Error(err))
		os.Exit(1)
	}
}
