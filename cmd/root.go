// Package cmd implements the CLI command structure for hyprhelp.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/nibzard/hyprhelp/internal/config"
	"github.com/nibzard/hyprhelp/internal/generate"
	"github.com/nibzard/hyprhelp/internal/logging"
	"github.com/nibzard/hyprhelp/internal/output"
	"github.com/nibzard/hyprhelp/internal/render"
	"github.com/nibzard/hyprhelp/internal/resolve"
)

// Version is set via ldflags at build time.
var Version = "dev"

// fallbackLogFile records config errors, which happen before the configured
// log path is known.
var fallbackLogFile = config.DefaultLogFile

// Run executes the hyprhelp CLI.
func Run(ctx context.Context, args []string) error {
	// Create a flag set for global options
	fs := flag.NewFlagSet("hyprhelp", flag.ContinueOnError)
	fs.Usage = func() {
		printUsage(fs, os.Stderr)
	}
	help := fs.Bool("help", false, "Show help")
	fs.BoolVar(help, "h", false, "Show help")
	showVersion := fs.Bool("version", false, "Show version")
	fs.BoolVar(showVersion, "v", false, "Show version")

	// Global flags
	cws, err := config.LoadWithSources(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		logConfigError(err)
		return fmt.Errorf("loading config: %w", err)
	}
	cfg := cws.Config
	if *help {
		printUsage(fs, os.Stdout)
		return nil
	}
	if *showVersion {
		return versionCommand()
	}

	// Determine the subcommand; generate is the default
	subcommand := "generate"
	remainingArgs := fs.Args()
	if len(remainingArgs) > 0 {
		subcommand = remainingArgs[0]
		remainingArgs = remainingArgs[1:]
	}

	switch subcommand {
	case "generate", "gen":
		return generateCommand(ctx, cfg, remainingArgs)
	case "preview":
		return previewCommand(cfg, remainingArgs)
	case "doctor":
		return doctorCommand(cws, remainingArgs)
	case "log", "tail":
		return logCommand(cfg, remainingArgs)
	case "config":
		return configCommand(cws, remainingArgs)
	case "init":
		return initCommand(remainingArgs)
	case "version":
		return versionCommand()
	case "help":
		printUsage(fs, os.Stdout)
		return nil
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", subcommand)
		printUsage(fs, os.Stderr)
		return fmt.Errorf("unknown command: %s", subcommand)
	}
}

// generateCommand writes the help document and the debug log.
func generateCommand(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("hyprhelp generate", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments: %v", fs.Args())
	}

	debugLog := openDebugLog(cfg)
	defer debugLog.Close()

	if _, err := generate.Run(ctx, cfg, debugLog); err != nil {
		return fmt.Errorf("generating help: %w", err)
	}
	return nil
}

// previewCommand prints the keybinding table to stdout without writing files.
func previewCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("hyprhelp preview", flag.ContinueOnError)
	width := fs.Int("width", 0, "Table width (0 = fit content)")
	raw := fs.Bool("raw", false, "Print the document in the configured format instead of a table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, _ := generate.Build(cfg, consoleLog(cfg))
	if *raw {
		data, err := doc.Encode(cfg.OutputFormat())
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(data)
		return err
	}
	if doc.IsError() {
		fmt.Println(doc.Markdown)
		return errors.New(doc.Error)
	}
	fmt.Println(render.Table(doc.Rows, *width))
	return nil
}

// doctorCommand reports which keybinding file would be used and why.
func doctorCommand(cws *config.ConfigWithSources, args []string) error {
	fs := flag.NewFlagSet("hyprhelp doctor", flag.ContinueOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}
	cfg := cws.Config

	fmt.Println("Hyprhelp Doctor")
	fmt.Println("===============")
	fmt.Println()

	allOK := true

	fmt.Println("Keybinding files:")
	selected := ""
	for _, c := range resolve.Check(cfg.CandidatePaths) {
		switch {
		case c.Exists && selected == "":
			selected = c.Path
			fmt.Printf("  ✅ %s (selected)\n", c.Path)
		case c.Exists:
			fmt.Printf("  ✅ %s\n", c.Path)
		default:
			fmt.Printf("  ❌ %s\n", c.Path)
		}
	}
	if selected == "" {
		fmt.Println("  No keybinding file found; an error document will be written.")
		allOK = false
	} else if src, err := generate.Load([]string{selected}, logging.Discard(logging.DefaultOptions())); err != nil {
		fmt.Printf("  ❌ Read failed: %v\n", err)
		allOK = false
	} else {
		fmt.Printf("  %d lines, %d bindings\n", src.Result.Lines, src.Result.Binds)
	}
	fmt.Println()

	fmt.Println("Output:")
	if err := checkWritableDir(filepath.Dir(cfg.OutputFile)); err != nil {
		fmt.Printf("  ❌ %s (%v)\n", cfg.OutputFile, err)
		allOK = false
	} else {
		fmt.Printf("  ✅ %s (%s)\n", cfg.OutputFile, cfg.Format)
	}
	if cfg.LogFile == "" {
		fmt.Println("  Debug log disabled")
	} else if err := checkWritableDir(filepath.Dir(cfg.LogFile)); err != nil {
		fmt.Printf("  ⚠️  %s (%v)\n", cfg.LogFile, err)
	} else {
		fmt.Printf("  ✅ %s\n", cfg.LogFile)
	}
	fmt.Println()

	fmt.Println("Config:")
	if cfg.ConfigFile != "" {
		fmt.Printf("  File: %s\n", cfg.ConfigFile)
	} else {
		fmt.Println("  File: none (using defaults)")
	}
	fields := make([]string, 0, len(cws.Sources))
	for field := range cws.Sources {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Printf("  %-16s %s\n", field, cws.Sources[field])
	}
	fmt.Println()

	if !allOK {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

// logCommand prints the debug log of the last run.
func logCommand(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("hyprhelp log", flag.ContinueOnError)
	n := fs.Int("n", 0, "Number of lines to show (0 = all)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if cfg.LogFile == "" {
		return fmt.Errorf("debug log is disabled")
	}
	return logging.Tail(os.Stdout, cfg.LogFile, *n)
}

// configCommand prints the effective configuration or an example file.
func configCommand(cws *config.ConfigWithSources, args []string) error {
	fs := flag.NewFlagSet("hyprhelp config", flag.ContinueOnError)
	example := fs.Bool("example", false, "Print an example config file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *example {
		fmt.Print(config.ExampleConfig())
		return nil
	}

	cfg := cws.Config
	fmt.Printf("candidate_paths = [%s]  # %s\n", quoteList(cfg.CandidatePaths), cws.Sources["candidate_paths"])
	fmt.Printf("output_file = %q  # %s\n", cfg.OutputFile, cws.Sources["output_file"])
	fmt.Printf("format = %q  # %s\n", cfg.Format, cws.Sources["format"])
	fmt.Printf("log_file = %q  # %s\n", cfg.LogFile, cws.Sources["log_file"])
	fmt.Printf("log_level = %q  # %s\n", cfg.LogLevel, cws.Sources["log_level"])
	fmt.Printf("verbose = %v  # %s\n", cfg.Verbose, cws.Sources["verbose"])
	return nil
}

// initCommand writes the example config to the user config location.
func initCommand(args []string) error {
	fs := flag.NewFlagSet("hyprhelp init", flag.ContinueOnError)
	force := fs.Bool("force", false, "Overwrite an existing config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	path, err := config.UserConfigPath()
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err == nil && !*force {
		fmt.Printf("Config already exists: %s (use -force to overwrite)\n", path)
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := output.WriteFile(path, []byte(config.ExampleConfig())); err != nil {
		return err
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

func versionCommand() error {
	fmt.Printf("hyprhelp version %s\n", Version)
	return nil
}

// openDebugLog opens the run's debug log. A log that cannot be opened is
// reported on stderr and replaced by a discarding one.
func openDebugLog(cfg *config.Config) *logging.DebugLog {
	opts := logOptions(cfg)
	if cfg.LogFile == "" {
		return logging.Discard(opts)
	}
	return logging.OpenOrDiscard(cfg.LogFile, opts, os.Stderr)
}

// logConfigError starts a fresh debug log at the default location holding
// only the config error, so a failed run still leaves a trace.
func logConfigError(err error) {
	debugLog := logging.OpenOrDiscard(fallbackLogFile, logging.DefaultOptions(), os.Stderr)
	defer debugLog.Close()
	debugLog.Error("Exception loading config", "err", err)
}

// consoleLog is used by read-only commands so they leave the debug log of the
// last generate run untouched. Entries only show up with -verbose.
func consoleLog(cfg *config.Config) *logging.DebugLog {
	opts := logOptions(cfg)
	opts.ReportTimestamp = false
	return logging.Discard(opts)
}

func logOptions(cfg *config.Config) logging.Options {
	opts := logging.DefaultOptions()
	if lvl, err := logging.ParseLevel(cfg.LogLevel); err == nil {
		opts.Level = lvl
	}
	if cfg.Verbose {
		opts.Mirror = os.Stderr
	}
	return opts
}

func checkWritableDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	f, err := os.CreateTemp(dir, ".hyprhelp-doctor-*")
	if err != nil {
		return fmt.Errorf("not writable")
	}
	name := f.Name()
	f.Close()
	return os.Remove(name)
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = fmt.Sprintf("%q", item)
	}
	return strings.Join(quoted, ", ")
}

// printUsage prints the usage message.
func printUsage(fs *flag.FlagSet, w io.Writer) {
	fmt.Fprintln(w, "Hyprhelp - Hyprland keybinding reference generator")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  hyprhelp [options] [command] [command options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  generate      Write the keybinding document (default command)")
	fmt.Fprintln(w, "  preview       Print the keybinding table to the terminal")
	fmt.Fprintln(w, "  doctor        Check keybinding files, output paths and config")
	fmt.Fprintln(w, "  log           Show the debug log of the last run")
	fmt.Fprintln(w, "  config        Show the effective configuration")
	fmt.Fprintln(w, "  init          Write an example config file")
	fmt.Fprintln(w, "  version       Show version information")
	fmt.Fprintln(w, "  help          Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Global Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Command Options:")
	fmt.Fprintln(w, "  preview -width int   Table width (0 = fit content)")
	fmt.Fprintln(w, "  preview -raw         Print the document in the configured format")
	fmt.Fprintln(w, "  log -n int           Number of lines to show (0 = all)")
	fmt.Fprintln(w, "  config -example      Print an example config file")
	fmt.Fprintln(w, "  init -force          Overwrite an existing config file")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  "+config.EnvConfigFile+"      Config file path")
	fmt.Fprintln(w, "  "+config.EnvKeybinds+"    Keybinding file candidates (path list)")
	fmt.Fprintln(w, "  "+config.EnvOutput+", "+config.EnvLog+", "+config.EnvFormat+",")
	fmt.Fprintln(w, "  "+config.EnvLogLevel+", "+config.EnvVerbose)
}
