package main

import (
	"os"

	"todoapi/config"
	"todoapi/helper"
	"todoapi/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction is required. Use 'up', 'down', 'drop' or 'step-up'")
	}

	if err := helper.Runner(config.Get(), os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg("Migration failed")
	}
}
