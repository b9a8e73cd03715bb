package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is the application version, set via ldflags.
var version string = "dev"

// cliOptions holds the flags that only make sense for a single invocation
// and are therefore not bound into viper.
type cliOptions struct {
	cfgFile string

	search      string
	searchNoExt string
	contains    string

	interactive bool
	clipboard   bool
	pdfFile     string
	summaryFile string
}

// displayKeys maps viper keys to the flags that feed them. These can also be
// set in the config file or through FSS_* environment variables.
var displayKeys = map[string]string{
	"recursive":         "recursive",
	"permissions":       "permissions",
	"modification_time": "modification-time",
	"files":             "files",
	"symlinks":          "symlinks",
	"special":           "special",
	"dir_size":          "dir-size",
	"abs":               "abs",
	"show_err":          "show-err",
	"gitignore":         "gitignore",
}

func newRootCommand(v *viper.Viper) *cobra.Command {
	opts := &cliOptions{}

	cmd := &cobra.Command{
		Use:   "fss [PATH]",
		Short: "fss scans a directory tree and summarises what it finds.",
		Long: `fss lists the entries of a directory (files, directories, symlinks and
special files such as sockets or pipes), optionally recursing into
subdirectories, and prints per-kind counts for the directory and for the
whole traversal. Kinds that are not listed individually are folded into a
single "<N kind>" row per directory.

Unknown options are rejected and exit with status 1.`,
		Example: `  fss .. --recursive --files
  fss -r 2 -d /var/log
  fss --contains conf -r -f /etc`,
		Version:      version,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		// main prints the error itself.
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, opts, args)
		},
	}

	flags := cmd.Flags()

	// Traversal
	flags.StringP("recursive", "r", "", "Recursively scan directories (can be followed by a positive integer to limit the depth)")
	flags.Lookup("recursive").NoOptDefVal = unlimitedDepth

	// Metadata columns
	flags.BoolP("permissions", "p", false, "Show permissions of all entries")
	flags.BoolP("modification-time", "t", false, "Show time of last modification of entries")

	// Kinds listed individually
	flags.BoolP("files", "f", false, "Show regular files (normally aggregated)")
	flags.BoolP("symlinks", "l", false, "Show symlinks (normally aggregated)")
	flags.BoolP("special", "s", false, "Show special files such as sockets, pipes, etc. (normally aggregated)")

	flags.BoolP("dir-size", "d", false, "Recursively calculate and display the size of each directory")
	flags.BoolP("abs", "a", false, "Show the absolute path of each entry without any indentation")
	flags.BoolP("show-err", "e", false, "Show errors")
	flags.Bool("gitignore", false, "Skip entries ignored by the .gitignore at the root of the scan")

	// Search
	flags.StringVarP(&opts.search, "search", "S", "", "Only show entries whose name matches the pattern completely")
	flags.StringVar(&opts.searchNoExt, "search-noext", "", "Only show entries whose name (except for the extension) matches the pattern completely")
	flags.StringVar(&opts.contains, "contains", "", "Only show entries whose name contains the pattern")
	cmd.MarkFlagsMutuallyExclusive("search", "search-noext", "contains")

	// Sources and sinks
	flags.BoolVarP(&opts.interactive, "interactive", "i", false, "Pick the directory to scan with a fuzzy finder")
	flags.BoolVar(&opts.clipboard, "clipboard", false, "Copy the listing to the clipboard instead of printing it")
	flags.StringVar(&opts.pdfFile, "pdf", "", "Save the listing as a PDF")
	flags.StringVar(&opts.summaryFile, "summary-file", "", "Write the summary counts to a YAML file")
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.config/fss/config.toml)")

	for key, name := range displayKeys {
		_ = v.BindPFlag(key, flags.Lookup(name))
	}

	return cmd
}

// initConfig reads in config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string, errOut io.Writer) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "fss"))
		}
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("toml")
	}

	v.SetEnvPrefix("FSS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv() // read in environment variables that match FSS_*

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(errOut, "Warning: error reading config file: %s\n", err)
		}
	}
}

// searchSelection returns the active search mode and its pattern. Flag
// parsing has already rejected more than one of them.
func searchSelection(cmd *cobra.Command, opts *cliOptions) (SearchMode, string) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("search"):
		return SearchExact, opts.search
	case flags.Changed("search-noext"):
		return SearchStem, opts.searchNoExt
	case flags.Changed("contains"):
		return SearchContains, opts.contains
	default:
		return SearchNone, ""
	}
}

// buildConfig resolves the immutable run configuration. The returned
// warnings describe options that were ignored.
func buildConfig(cmd *cobra.Command, v *viper.Viper, opts *cliOptions, root string) (*Config, []string) {
	var warnings []string

	recursive, depth, warning := parseRecursion(v.GetString("recursive"))
	if warning != "" {
		warnings = append(warnings, warning)
	}

	mode, pattern := searchSelection(cmd, opts)

	cfg := &Config{
		Root:      root,
		Pattern:   pattern,
		Mode:      mode,
		Recursive: recursive,
		MaxDepth:  depth,
		Display: DisplayFlags{
			Permissions: v.GetBool("permissions"),
			ModTime:     v.GetBool("modification_time"),
			AbsNoIndent: v.GetBool("abs"),
			Files:       v.GetBool("files"),
			Symlinks:    v.GetBool("symlinks"),
			Special:     v.GetBool("special"),
			DirSize:     v.GetBool("dir_size"),
			Errors:      v.GetBool("show_err"),
		},
		RespectGitignore: v.GetBool("gitignore"),
	}
	return cfg, warnings
}

// resolveRoot turns the positional argument (or the interactive pick) into
// the directory to scan. label is what the summary calls the root. cleanup
// removes anything created for the scan, such as a cloned repository.
func resolveRoot(opts *cliOptions, args []string, errOut io.Writer) (root, label string, cleanup func(), err error) {
	cleanup = func() {}

	root = "."
	if len(args) > 0 && args[len(args)-1] != "" {
		root = args[len(args)-1]
	}

	if opts.interactive {
		picked, err := runInteractiveFinder(".")
		if err != nil {
			return "", "", cleanup, fmt.Errorf("interactive mode error: %w", err)
		}
		return picked, picked, cleanup, nil
	}

	if isGitURL(root) && !isLocalPath(root) {
		dir, err := cloneGitRepo(root, errOut)
		if err != nil {
			return "", "", cleanup, err
		}
		return dir, root, func() { _ = os.RemoveAll(dir) }, nil
	}

	root = truncatePath(root, maxPathLen)
	return root, root, cleanup, nil
}

func run(cmd *cobra.Command, v *viper.Viper, opts *cliOptions, args []string) error {
	errOut := cmd.ErrOrStderr()
	initConfig(v, opts.cfgFile, errOut)

	root, label, cleanup, err := resolveRoot(opts, args, errOut)
	if err != nil {
		return err
	}
	defer cleanup()
	if opts.interactive && root == "" {
		fmt.Fprintln(errOut, "Interactive selection aborted.")
		return nil
	}

	cfg, warnings := buildConfig(cmd, v, opts, root)
	log := newConsole(errOut, cfg.Display.Errors)
	for _, w := range warnings {
		log.Warnf("%s", w)
	}

	caps := hostCapabilities()

	var filter ignoreFilter
	if cfg.RespectGitignore {
		filter, err = loadGitignore(cfg.Root)
		if err != nil {
			log.Warnf("%v", err)
		}
	}

	sink := newOutputSink(cmd.OutOrStdout(), opts.pdfFile, opts.clipboard, "fss "+label)
	out := newTextPresenter(sink.Writer(), cfg, caps, sink.Colors())

	var report *Report
	if cfg.Mode == SearchNone {
		scan := NewScanEngine(cfg, caps, out, log)
		scan.ignore = filter
		totals, err := scan.Run()
		if err != nil {
			log.Failf(err, "while iterating over \"%s\"", label)
			return nil
		}
		writeScanSummary(sink.Writer(), label, cfg.Recursive, &totals)
		report = newScanReport(cfg, label, &totals)
	} else {
		search := NewSearchEngine(cfg, caps, out, log)
		search.ignore = filter
		totals, err := search.Run()
		if err != nil {
			log.Errorf(err, "while iterating over \"%s\"", label)
			return nil
		}
		writeSearchSummary(sink.Writer(), label, &totals)
		report = newSearchReport(cfg, label, &totals)
	}

	if err := sink.Close(); err != nil {
		return err
	}

	if opts.summaryFile != "" {
		return writeReportFile(opts.summaryFile, report)
	}
	return nil
}

func main() {
	cmd := newRootCommand(viper.New())
	cmd.SetArgs(normalizeArgs(os.Args[1:]))

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
