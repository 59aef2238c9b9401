package cmd

import (
	"errors"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/motcom/g/internal/config"
	"github.com/motcom/g/internal/display"
	"github.com/motcom/g/internal/input"
	"github.com/motcom/g/internal/logger"
	"github.com/motcom/g/internal/models"
	"github.com/motcom/g/internal/pattern"
	"github.com/motcom/g/internal/scanner"
)

// options holds the parsed flags of one invocation.
type options struct {
	streams Streams

	number        bool
	readFiles     bool
	caseSensitive bool
	color         colorMode
	workers       int
	sorted        bool
	configPath    string
	logLevel      string
}

// run implements the search: load config, compile the pattern, resolve the
// input mode, scan and print.
func (o *options) run(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return &ExitError{Code: ExitPattern, Err: ErrMissingPattern}
	}
	raw := args[0]
	var fileArg string
	if len(args) > 1 {
		fileArg = args[1]
	}

	cfg, err := o.loadConfig(cmd)
	if err != nil {
		return err
	}

	palette, err := display.NewPalette(cfg.Colors.Match, cfg.Colors.Banner, cfg.Colors.LineNumber)
	if err != nil {
		return exitErrorf(ExitUsage, "invalid config: %v", err)
	}

	log := logger.NewConsoleLogger(o.streams.Err, cfg.LogLevel)
	if o.configPath != "" && !config.Exists(o.configPath) {
		log.Warnf("config file %s not found, using defaults", o.configPath)
	}

	p, err := pattern.Compile(raw, o.caseSensitive)
	if err != nil {
		return &ExitError{Code: ExitPattern, Err: err}
	}

	env := o.streams.Env
	mode, err := input.Resolve(env, fileArg, o.streams.Getwd)
	if err != nil {
		return &ExitError{Code: ExitWorkingDirectory, Err: err}
	}
	if mode.Kind == input.Stdin && fileArg != "" {
		log.Debugf("stdin is piped, ignoring file argument %s", fileArg)
	}
	log.Debugf("input mode: %s", mode)

	resolver := input.NewResolver(o.streams.In, o.readFiles)
	resolver.Logger = log
	sources, err := resolver.Sources(mode)
	if err != nil {
		// Only a directory walk can fail here, when the cwd went away
		return exitErrorf(ExitWorkingDirectory, "%v: %v", input.ErrUnresolvableWorkingDirectory, err)
	}

	dctx := models.DisplayContext{
		StdinPiped:      env.StdinPiped,
		StdoutPiped:     env.StdoutPiped,
		ShowLineNumbers: o.number,
		ReadFiles:       o.readFiles,
		CaseSensitive:   o.caseSensitive,
		Color:           o.color.enabled(env.StdoutPiped),
		Banners:         mode.Kind != input.SingleFile,
	}
	printer := display.NewPrinter(o.streams.Out, display.NewFormatter(dctx, palette))

	s := scanner.New(p, printer).
		WithWorkers(cfg.Workers).
		WithLogger(log).
		WithOrdered(cfg.Sorted)
	log.Debugf("scanning %d source(s) with %d worker(s)", len(sources), s.Workers())

	stats := s.Run(cmd.Context(), sources)
	log.Infof("done: %d source(s), %d skipped, %d matching line(s)", stats.Sources, stats.Skipped, stats.Matches)

	if err := printer.Err(); err != nil {
		if errors.Is(err, syscall.EPIPE) {
			log.Debugf("output closed early: %v", err)
		} else {
			log.Errorf("write output: %v", err)
		}
	}

	return nil
}

// loadConfig reads the config file and applies explicitly set flags on top.
func (o *options) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := o.configPath
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Err: err}
	}

	var workers *int
	var logLevel *string
	var sorted *bool
	if cmd.Flags().Changed("workers") {
		workers = &o.workers
	}
	if cmd.Flags().Changed("log-level") {
		logLevel = &o.logLevel
	}
	if cmd.Flags().Changed("sorted") {
		sorted = &o.sorted
	}
	cfg.MergeWithFlags(workers, logLevel, sorted)

	if err := cfg.Validate(); err != nil {
		return nil, &ExitError{Code: ExitUsage, Err: err}
	}

	return cfg, nil
}
