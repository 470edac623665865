package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-zine/cmd/zine/internal/bootstrap"
	buildcmd "github.com/goliatone/go-zine/internal/commands/build"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatalf("zine build: %v", err)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("zine", flag.ExitOnError)
	content := fs.String("content", ".", "Path to the content root")
	output := fs.String("output", "build", "Path to the output directory")
	templates := fs.String("templates", "templates", "Path to the templates directory")
	clean := fs.Bool("clean", false, "Remove the output directory before building")
	dryRun := fs.Bool("dry-run", false, "Parse the content tree without writing output")
	theming := fs.Bool("theming", false, "Enable theme manifest enrichment")
	logLevel := fs.String("log-level", "info", "Log level (trace, debug, info, warn, error, fatal)")
	logFormat := fs.String("log-format", "console", "Log format (console, json, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:     *content,
		OutputDir:      *output,
		TemplatesDir:   *templates,
		CleanBuild:     *clean,
		ThemingEnabled: *theming,
		LogLevel:       *logLevel,
		LogFormat:      *logFormat,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := buildcmd.NewBuildSiteHandler(module.Service, module.Logger)

	var envelope *buildcmd.ResultEnvelope
	cmd := buildcmd.BuildSiteCommand{
		DryRun: *dryRun,
		ResultCallback: func(env buildcmd.ResultEnvelope) {
			envelope = &env
		},
	}

	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute build command: %w", err)
	}

	if envelope != nil && envelope.Result != nil {
		result := envelope.Result
		fmt.Fprintf(os.Stdout, "build %s: %d seasons, %d articles, %d pages in %s\n",
			result.ID, result.Seasons, result.Articles, result.Pages, result.Duration)
	}

	return nil
}
