package main

import (
	"os"

	"github.com/robgonnella/sockchat/internal/logger"
	"github.com/robgonnella/sockchat/internal/scripts/bump-version/version"
)

// paths relative to the repo root
const (
	appInfoFile  = "internal/app-info/info.go"
	templateFile = "internal/templates/info.go.tmpl"
)

func main() {
	log := logger.New()

	args := os.Args[1:]

	if len(args) != 1 {
		log.Fatal().Msg("usage: bump-version vMAJOR.MINOR.PATCH")
	}

	data := version.BumpData{
		Version:      args[0],
		OutFile:      appInfoFile,
		TemplatePath: templateFile,
	}

	generator := version.NewTemplateGenerator(data.OutFile, data.TemplatePath)

	if err := version.Bump(data, generator, version.NewGit()); err != nil {
		log.Fatal().Err(err).Msg("failed to bump version")
	}

	log.Info().Str("version", data.Version).Msg("bumped sockchat version, push with: git push <remote> <branch> --tags")
}
