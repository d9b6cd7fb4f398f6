package main

import (
	"os"

	"github.com/hyperfine-go/hyperfine/cliapp"
	"github.com/rs/zerolog/log"
)

var (
	version = "dev"
)

func main() {
	app := cliapp.New()
	app.SetVersion(version)

	if err := app.Run(os.Args); err != nil {
		log.Error().Err(err).Msg("hyperfine failed")
		os.Exit(1)
	}
}
