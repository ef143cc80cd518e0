package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/vk/shellforge/internal/app"
	"github.com/vk/shellforge/internal/cli"
	"github.com/vk/shellforge/internal/config"
	"github.com/vk/shellforge/internal/hcl"
	"github.com/vk/shellforge/internal/yamlcfg"
)

// main is the entrypoint for the shellforge application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW io.Writer, args []string) (err error) {
	appConfig, shouldExit, parseErr := cli.Parse(args, outW)
	if parseErr != nil {
		return parseErr
	}
	if shouldExit {
		return nil
	}

	// The app panics on critical config errors, so we recover here to provide
	// a clean error to the user.
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application startup panicked: %v", r)
		}
	}()

	forge := app.NewApp(outW, os.Stderr, appConfig, loaderForPath(appConfig.EnvPath), nil)
	return forge.Run(context.Background())
}

// loaderForPath picks the descriptor loader by file extension; directories
// and .hcl files use the HCL loader.
func loaderForPath(path string) config.Loader {
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return yamlcfg.NewLoader()
	}
	return hcl.NewLoader()
}
