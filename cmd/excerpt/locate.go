package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/nao1215/excerpt/internal/config"
	"github.com/nao1215/excerpt/internal/locator"
	"github.com/nao1215/excerpt/internal/log"
	"github.com/nao1215/excerpt/internal/pipeline"
	"github.com/nao1215/excerpt/internal/report"
	"github.com/spf13/cobra"
)

// runLocateCmd executes the lookup.
func runLocateCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runLocate(ctx, cfg, cmd.OutOrStdout(), logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getLogFormatFlag retrieves the log format from the command or its parent.
func getLogFormatFlag(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		format, err = cmd.Root().PersistentFlags().GetString("log-format")
		if err != nil {
			return config.DefaultLogFormat
		}
	}
	return format
}

// newLogger builds the stderr logger in the configured format.
func newLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	if cfg.LogFormat == config.LogFormatJSON {
		return log.NewJSONLogger(w, cfg.Verbose)
	}
	return log.NewLogger(w, cfg.Verbose)
}

// buildConfig layers defaults, the configuration file and explicitly set
// flags, in that order.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)
	cfg.LogFormat = getLogFormatFlag(cmd)

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently use defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		cf, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		if err := cfg.Apply(cf); err != nil {
			return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
		}
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("configuration file not found: %s", cfg.ConfigFilePath)
	}

	flags := cmd.Flags()
	if flags.Changed("pattern") {
		if cfg.Pattern, err = flags.GetString("pattern"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("encoding") {
		if cfg.Encoding, err = flags.GetString("encoding"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("before") {
		if cfg.Before, err = flags.GetInt("before"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("after") {
		if cfg.After, err = flags.GetInt("after"); err != nil {
			return nil, err
		}
	}
	if flags.Changed("jobs") {
		if cfg.Jobs, err = flags.GetInt("jobs"); err != nil {
			return nil, err
		}
	}

	// An explicit format flag replaces whatever the config file chose.
	jsonReport, err := flags.GetBool("json")
	if err != nil {
		return nil, err
	}
	markdownReport, err := flags.GetBool("markdown")
	if err != nil {
		return nil, err
	}
	if jsonReport || markdownReport {
		cfg.JSONReport = jsonReport
		cfg.MarkdownReport = markdownReport
	}

	cfg.ReportFile, err = flags.GetString("output")
	if err != nil {
		return nil, err
	}

	if len(args) > 0 {
		cfg.Inputs = args
	}

	return cfg, nil
}

// runLocate searches every input and writes the report.
func runLocate(ctx context.Context, cfg *config.Config, stdout io.Writer, logger *slog.Logger) error {
	loc, err := locator.New(cfg.Pattern, locator.WithMargins(cfg.Before, cfg.After))
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	margins := loc.Margins()
	logger.Info("starting lookup",
		"inputs", cfg.Inputs,
		"pattern", loc.Pattern(),
		"encoding", cfg.Encoding,
		"before", margins.Before,
		"after", margins.After,
	)

	runner := pipeline.New(loc,
		pipeline.WithConcurrency(cfg.Jobs),
		pipeline.WithEncoding(cfg.Encoding),
		pipeline.WithLogger(logger),
	)

	outcomes, err := runner.Run(ctx, cfg.Inputs)
	if err != nil {
		return err
	}

	for _, o := range outcomes {
		if !o.Result.Found {
			logger.Info("pattern not found", "path", o.Path)
		}
	}

	return outputReport(cfg, stdout, outcomes)
}

// outputReport writes the outcomes in the requested format, to the report
// file when one is configured and to stdout otherwise.
func outputReport(cfg *config.Config, stdout io.Writer, outcomes []pipeline.Outcome) error {
	if cfg.ReportFile == "" {
		_, err := newReportWriter(cfg, stdout).Write(outcomes)
		return err
	}

	dir := filepath.Dir(cfg.ReportFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	// Excerpts come from private chat exports; keep the file owner-only.
	f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	_, err = newReportWriter(cfg, f).Write(outcomes)
	return closeReport(f, err)
}

// closeReport closes the report file and returns the write error, or the
// close error when the write succeeded. A failed close can lose the last
// buffered write.
func closeReport(c io.Closer, writeErr error) error {
	if err := c.Close(); err != nil && writeErr == nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	return writeErr
}

// newReportWriter picks the writer for the configured format.
func newReportWriter(cfg *config.Config, output io.Writer) report.Writer {
	switch {
	case cfg.JSONReport:
		return report.NewJSONWriter(output, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		return report.NewMarkdownWriter(output)
	default:
		return report.NewTextWriter(output)
	}
}
