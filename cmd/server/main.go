package main

import (
	"github.com/rs/zerolog/log"

	"github.com/go-fin/fin-api/cmd/httpserver"
	"github.com/go-fin/fin-api/internal/accountrepo"
	"github.com/go-fin/fin-api/internal/middleware"
	"github.com/go-fin/fin-api/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.GetLogger(config)

	store := accountrepo.NewRepoMem()

	server, err := httpserver.New(store, logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	if err := server.Engine.Run(config.ServerAddress); err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
