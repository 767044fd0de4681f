package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/goliatone/go-themekit/cmd/themekit/commands"
)

var version = "dev"

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("themekit"),
		kong.Description("Render content trees into themed HTML pages."),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)

	err := ctx.Run(&commands.Global{
		Logger: slog.Default(),
		Prompt: commands.NewSurveyPrompter(),
		Stdout: os.Stdout,
	}, &cli)
	ctx.FatalIfErrorf(err)
}
