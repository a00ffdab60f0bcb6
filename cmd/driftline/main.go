package main

import (
	"os"

	"github.com/ThatOtherAndrew/Driftline/cmd"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg(cmd.FailureMessage(err))
		os.Exit(1)
	}
}
