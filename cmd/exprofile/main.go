// Package main provides the CLI entry point for exprofile-go.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/exprofile-go/internal/config"
	"github.com/ukaji3/exprofile-go/internal/logging"
	"github.com/ukaji3/exprofile-go/internal/server"
	"github.com/ukaji3/exprofile-go/pkg/exprofile"
	"github.com/ukaji3/exprofile-go/pkg/exprofile/output"
	"github.com/ukaji3/exprofile-go/pkg/exprofile/reader"
)

type cliFlags struct {
	envFile                string
	outputPath             string
	pretty                 bool
	sheetsDir              string
	parallel               int
	isolateSheetErrors     bool
	numericSummary         bool
	duplicateSheets        string
	sampleSize             int
	keepPlaceholderHeaders bool
	logLevel               string
	quiet                  bool
	addr                   string
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	f := &cliFlags{}

	rootCmd := &cobra.Command{
		Use:   "exprofile [input.xlsx]",
		Short: "Profile the schema of spreadsheet workbooks",
		Long: `exprofile-go inspects every sheet of a workbook (xlsx, xlsm, csv) and
reports column names, inferred data types, null counts, sample values and
reference-like columns as JSON.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f, stdout)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.envFile, "env-file", ".env", "Environment file to load")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: error, warn, info, debug (default from LOG_LEVEL)")
	pf.IntVar(&f.parallel, "parallel", 0, "Number of sheets profiled concurrently (default from EXPROFILE_PARALLELISM)")
	pf.BoolVar(&f.isolateSheetErrors, "isolate-sheet-errors", false, "Record unreadable sheets on the report instead of failing")
	pf.BoolVar(&f.numericSummary, "numeric-summary", false, "Add min/max/mean/median for numeric columns")
	pf.StringVar(&f.duplicateSheets, "duplicate-sheets", "", "Duplicate sheet name policy: overwrite, error")
	pf.IntVar(&f.sampleSize, "sample-size", 0, "Values per column used for type inference")
	pf.BoolVar(&f.keepPlaceholderHeaders, "keep-placeholder-headers", false, "Keep blank header cells as Column_<n> columns")

	rootCmd.Flags().StringVarP(&f.outputPath, "output", "o", "", "Output file path (default from EXPROFILE_OUTPUT)")
	rootCmd.Flags().BoolVar(&f.pretty, "pretty", true, "Pretty-print JSON output")
	rootCmd.Flags().StringVar(&f.sheetsDir, "sheets-dir", "", "Directory for per-sheet output files")
	rootCmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "Do not print the per-sheet analysis")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve workbook profiling over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd, f)
		},
	}
	serveCmd.Flags().StringVar(&f.addr, "addr", "", "Listen address (default from EXPROFILE_ADDR)")
	rootCmd.AddCommand(serveCmd)

	return rootCmd
}

func run(cmd *cobra.Command, args []string, f *cliFlags, stdout io.Writer) error {
	cfg, opts, logger, err := setup(cmd, f)
	if err != nil {
		return report(cmd, err)
	}

	inputPath := cfg.Input
	if len(args) > 0 {
		inputPath = args[0]
	}
	outputPath := cfg.Output
	if f.outputPath != "" {
		outputPath = f.outputPath
	}

	logger.Debugf("profiling %s", inputPath)
	wb, err := exprofile.Profile(inputPath, opts)
	if err != nil {
		return report(cmd, err)
	}
	for _, name := range wb.SheetNames {
		if msg := wb.Sheets[name].Error; msg != "" {
			logger.Warnf("sheet %q skipped: %s", name, msg)
		}
	}

	if !f.quiet {
		printSummary(stdout, wb)
	}

	if err := output.WriteReport(wb, outputPath, f.pretty); err != nil {
		return report(cmd, fmt.Errorf("failed to write output: %w", err))
	}
	if f.sheetsDir != "" {
		if err := output.WriteSheetFiles(wb, f.sheetsDir, f.pretty); err != nil {
			return report(cmd, fmt.Errorf("failed to write sheet files: %w", err))
		}
	}

	if !f.quiet {
		printSaved(stdout, outputPath)
		printDetails(stdout, wb)
		fmt.Fprintln(stdout, "\n[OK] Analysis complete!")
	}
	logger.Infof("wrote %s (%d sheets)", outputPath, wb.TotalSheets)
	return nil
}

func serve(cmd *cobra.Command, f *cliFlags) error {
	cfg, opts, logger, err := setup(cmd, f)
	if err != nil {
		return report(cmd, err)
	}

	addr := cfg.Addr
	if f.addr != "" {
		addr = f.addr
	}

	srv := server.New(server.Config{
		Options:        opts,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}, logger)
	if err := srv.Run(addr); err != nil {
		return report(cmd, fmt.Errorf("server stopped: %w", err))
	}
	return nil
}

// setup loads configuration and applies command line overrides.
func setup(cmd *cobra.Command, f *cliFlags) (config.Config, exprofile.Options, *logging.Logger, error) {
	cfg, err := config.Load(f.envFile)
	if err != nil {
		return cfg, exprofile.Options{}, nil, err
	}

	levelName := cfg.LogLevel
	if f.logLevel != "" {
		levelName = f.logLevel
	}
	level, ok := logging.ParseLevel(levelName)
	if !ok {
		return cfg, exprofile.Options{}, nil, fmt.Errorf("invalid log level: %s (must be error, warn, info, or debug)", levelName)
	}
	logger := logging.New(level, cmd.ErrOrStderr()).With("cli")

	opts := exprofile.DefaultOptions()
	opts.Parallelism = cfg.Parallelism
	opts.IsolateSheetErrors = cfg.IsolateSheetErrors
	opts.NumericSummary = cfg.NumericSummary

	policyName := cfg.DuplicateSheets
	flags := cmd.Flags()
	if flags.Changed("parallel") {
		opts.Parallelism = f.parallel
	}
	if flags.Changed("isolate-sheet-errors") {
		opts.IsolateSheetErrors = f.isolateSheetErrors
	}
	if flags.Changed("numeric-summary") {
		opts.NumericSummary = f.numericSummary
	}
	if flags.Changed("duplicate-sheets") {
		policyName = strings.ToLower(f.duplicateSheets)
	}
	if flags.Changed("sample-size") {
		if f.sampleSize <= 0 {
			return cfg, opts, nil, fmt.Errorf("invalid sample size: %d (must be positive)", f.sampleSize)
		}
		opts.SampleSize = f.sampleSize
	}
	if flags.Changed("keep-placeholder-headers") {
		keep := f.keepPlaceholderHeaders
		opts.KeepPlaceholderHeaders = &keep
	}

	policy, ok := exprofile.ParseDuplicatePolicy(policyName)
	if !ok {
		return cfg, opts, nil, fmt.Errorf("invalid duplicate sheet policy: %s (must be overwrite or error)", policyName)
	}
	opts.DuplicateSheets = policy
	opts.Debugf = logger.With("reader").Debugf

	return cfg, opts, logger, nil
}

// report prints err with a remediation hint and returns it so the process exits non-zero.
func report(cmd *cobra.Command, err error) error {
	w := cmd.ErrOrStderr()
	switch {
	case errors.Is(err, exprofile.ErrFileNotFound):
		fmt.Fprintf(w, "Error: %v\n", err)
		fmt.Fprintln(w, "Please make sure the Excel file is in the project root directory.")
	case errors.Is(err, exprofile.ErrUnsupportedFormat):
		fmt.Fprintf(w, "ERROR: %v\n", err)
		fmt.Fprintf(w, "Supported input formats: %s\n", strings.Join(reader.SupportedExtensions(), ", "))
	default:
		fmt.Fprintf(w, "\n[ERROR] Error during analysis: %v\n", err)
	}
	return err
}
