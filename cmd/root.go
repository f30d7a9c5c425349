package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"cdr.dev/slog"
	"github.com/spf13/cobra"

	"github.com/kamusis/fcmd/internal/config"
	"github.com/kamusis/fcmd/internal/pathscan"
	"github.com/kamusis/fcmd/internal/report"
)

const programName = "fcmd"

// errUsage is returned when no keyword is given; the usage line has already
// been printed.
var errUsage = errors.New("no keywords given")

// rootFlags holds flag values for the root command.
type rootFlags struct {
	order      orderValue
	output     formatValue
	regex      bool
	ignoreCase bool
	filesOnly  bool
	sort       bool
	verbose    bool
}

func newRootCmd(cfg *config.Config, fs pathscan.DirReader) *cobra.Command {
	f := &rootFlags{output: formatValue{f: report.Text}}

	c := &cobra.Command{
		Use:   programName + " <command> [command ...]",
		Short: "Find commands in the search path by name or substring",
		Long: `fcmd lists every entry of the directories in $PATH whose name equals a
keyword (printed first) or contains it (printed under "Related commands:").
Directories that cannot be read are skipped silently.
Use -- before keywords starting with -, e.g. fcmd -- -foo.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, args, cfg, fs, f)
		},
	}
	c.SetVersionTemplate(versionTemplate())

	fl := c.Flags()
	fl.Var(&f.order, "order", "Directory processing order: reverse or forward (env "+config.EnvOrder+")")
	fl.VarP(&f.output, "output", "o", "Output format: text, json or yaml (env "+config.EnvOutput+")")
	fl.BoolVarP(&f.regex, "regex", "E", false, "Treat keywords as regular expressions")
	fl.BoolVarP(&f.ignoreCase, "ignore-case", "i", false, "Match names case-insensitively")
	fl.BoolVarP(&f.filesOnly, "files-only", "f", false, "Skip entries that are directories")
	fl.BoolVarP(&f.sort, "sort", "s", false, "Sort matches of each keyword by path")
	fl.BoolVarP(&f.verbose, "verbose", "v", false, "Log skipped directories to stderr (env "+config.EnvDebug+")")
	return c
}

// Execute is called by main.go.
func Execute() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, nil, pathscan.OS))
}

// run executes the root command and returns the process exit status.
// A nil cfg is loaded from the process environment.
func run(args []string, stdout, stderr io.Writer, cfg *config.Config, fs pathscan.DirReader) int {
	if cfg == nil {
		var err error
		if cfg, err = config.Load(nil); err != nil {
			printErr(stderr, err)
			return 1
		}
	}

	c := newRootCmd(cfg, fs)
	c.SetArgs(args)
	c.SetOut(stdout)
	c.SetErr(stderr)
	if err := c.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errUsage) {
			printErr(stderr, err)
		}
		return 1
	}
	return 0
}

func runRoot(cmd *cobra.Command, args []string, cfg *config.Config, fs pathscan.DirReader, f *rootFlags) error {
	if len(args) == 0 {
		printUsage(cmd.OutOrStdout())
		return errUsage
	}

	// Environment defaults apply only when the flag was not given.
	if !cmd.Flags().Changed("order") && cfg.Order != "" {
		if err := f.order.Set(cfg.Order); err != nil {
			return fmt.Errorf("%s: %w", config.EnvOrder, err)
		}
	}
	if !cmd.Flags().Changed("output") && cfg.Output != "" {
		if err := f.output.Set(cfg.Output); err != nil {
			return fmt.Errorf("%s: %w", config.EnvOutput, err)
		}
	}
	verbose := f.verbose
	if !cmd.Flags().Changed("verbose") {
		verbose = cfg.Verbose
	}

	ctx := cmd.Context()
	log := newLogger(cmd.ErrOrStderr(), verbose)

	matchOpts := pathscan.MatchOptions{Regex: f.regex, IgnoreCase: f.ignoreCase}
	matchers := make([]pathscan.Matcher, 0, len(args))
	for _, kw := range args {
		m, err := pathscan.NewMatcher(kw, matchOpts)
		if err != nil {
			return err
		}
		matchers = append(matchers, m)
	}

	scanner := pathscan.New(fs, pathscan.Options{
		Order:     f.order.o,
		FilesOnly: f.filesOnly,
		Sort:      f.sort,
	})
	log.Debug(ctx, "scanning search path",
		slog.F("var", cfg.PathVar),
		slog.F("dirs", cfg.SearchPath),
		slog.F("order", f.order.o.String()),
	)

	entries := make([]report.Entry, 0, len(args))
	for i, kw := range args {
		res := scanner.Scan(matchers[i], cfg.SearchPath)
		for _, err := range res.Skipped() {
			log.Debug(ctx, "skipped directory", slog.F("keyword", kw), slog.Error(err))
		}
		entries = append(entries, report.Entry{Keyword: kw, Result: res})
	}
	return report.Write(cmd.OutOrStdout(), f.output.f, entries)
}
