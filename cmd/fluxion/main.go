// Command fluxion is a modal terminal text editor.
//
// Usage:
//
//	fluxion [flags] [file]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/fluxion-editor/fluxion"
	"github.com/fluxion-editor/fluxion/config"
	"github.com/fluxion-editor/fluxion/editor"
	"github.com/fluxion-editor/fluxion/tui"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "fluxion: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	file        string
	configPath  string
	logPath     string
	version     bool
	printConfig bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet(fluxion.Name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.file, "file", "", "file to open at startup")
	fs.StringVar(&o.file, "f", "", "shorthand for -file")
	fs.StringVar(&o.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/fluxion/config.toml)")
	fs.StringVar(&o.logPath, "log", "", "write logs to this file (overrides [log] file)")
	fs.BoolVar(&o.version, "version", false, "print version and exit")
	fs.BoolVar(&o.printConfig, "default-config", false, "print the default config and exit")
	if err := fs.Parse(args); err != nil {
		return o, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		if o.file != "" {
			return o, fmt.Errorf("both -file and a file argument given")
		}
		o.file = fs.Arg(0)
	default:
		return o, fmt.Errorf("too many arguments: %v", fs.Args())
	}
	return o, nil
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	if o.version {
		fmt.Fprintln(stdout, fluxion.Banner())
		return nil
	}
	if o.printConfig {
		fmt.Fprint(stdout, config.DefaultTOML())
		return nil
	}

	cfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}
	if o.logPath != "" {
		cfg.Log.File = o.logPath
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()
	for _, k := range cfg.Unknown {
		logger.Warn("unknown config key", "key", k)
	}

	keys := tui.DefaultKeyMap()
	if err := keys.Apply(cfg.Keys); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	core := editor.New(editor.Config{
		StartDir: cfg.Editor.StartDir,
		Logger:   logger,
	})
	if o.file != "" {
		if err := core.OpenFile(o.file); err != nil {
			return err
		}
	}

	m := tui.New(core, tui.Config{
		KeyMap:       &keys,
		ShowLineNums: cfg.Editor.ShowLineNumbers,
		TabWidth:     cfg.Editor.TabWidth,
	})

	logger.Info("starting", "version", fluxion.Version(), "file", o.file)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	logger.Info("exiting")
	return nil
}

// newLogger returns a logger writing to cfg.Log.File, or discarding when no
// file is configured. The terminal belongs to the UI, so logs never go to
// stderr while the program runs.
func newLogger(cfg *config.Config) (*log.Logger, func(), error) {
	lvl, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}
	if cfg.Log.File == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Level:           lvl,
		Prefix:          fluxion.Name,
		ReportTimestamp: true,
	})
	return logger, func() { _ = f.Close() }, nil
}
