package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/elastic/internal/injector"
	"github.com/zeusync/elastic/internal/scenario"
	"github.com/zeusync/elastic/pkg/observability/log"
)

type output struct {
	Reports    []scenario.Report    `json:"reports"`
	Agreements []scenario.Agreement `json:"agreements"`
}

func main() {
	configPath := flag.String("config", "", "scenario file (.yaml, .yml or .json)")
	method := flag.String("method", "", "override the file's method: angle-free, trigonometric or both")
	level := flag.String("log-level", "", "override the file's log level")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	flag.Parse()

	if err := run(*configPath, *method, *level, *pretty); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(configPath, method, level string, pretty bool) error {
	if configPath == "" {
		return errors.New("-config is required")
	}

	file, err := scenario.LoadFile(configPath)
	if err != nil {
		return err
	}

	if method != "" {
		file.Method = method
	}
	if level != "" {
		file.LogLevel = level
	}
	config, err := file.Config()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := injector.InitializeApp(config)
	defer func() { _ = app.Logger.Sync() }()

	app.Logger.Info("Running batch",
		log.String("config", configPath),
		log.Int("scenarios", len(file.Scenarios)))

	reports, err := app.Runner.Run(ctx, file.Scenarios, config.Methods)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(os.Stdout)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(output{
		Reports:    reports,
		Agreements: scenario.Compare(reports, app.Runner.Tolerance()),
	})
}
