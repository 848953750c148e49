// Package main is the entry point for the atlas array shell.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dshills/atlas/internal/config"
	"github.com/dshills/atlas/internal/shell"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// options holds the parsed command line.
type options struct {
	configPath  string
	commands    multiFlag
	scripts     multiFlag
	noColor     bool
	showVersion bool
}

// multiFlag collects a repeatable string flag.
type multiFlag []string

func (m *multiFlag) String() string {
	return strings.Join(*m, "; ")
}

func (m *multiFlag) Set(v string) error {
	*m = append(*m, v)
	return nil
}

// isTerminal reports whether f is attached to a terminal.
var isTerminal = func(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin *os.File, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "atlas %s\n", version)
		fmt.Fprintf(stdout, "Commit: %s\n", commit)
		fmt.Fprintf(stdout, "Built: %s\n", date)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to load config: %v\n", err)
		return 1
	}
	cfg.Shell.Scripts = append(cfg.Shell.Scripts, opts.scripts...)

	interactive := len(opts.commands) == 0 && isTerminal(stdin)
	sessionOpts := []shell.Option{
		shell.WithOutput(stdout),
		shell.WithErrorOutput(stderr),
		shell.WithColor(useColor(cfg.Shell.Color, opts.noColor, stderr)),
	}
	if !interactive {
		sessionOpts = append(sessionOpts, shell.WithPrompt(""))
	}

	sess, err := shell.New(cfg, sessionOpts...)
	if err != nil {
		fmt.Fprintf(stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer sess.Close()

	// -e commands run in order and stop at the first failure.
	if len(opts.commands) > 0 {
		for _, line := range opts.commands {
			if err := sess.Exec(line); err != nil {
				if errors.Is(err, shell.ErrQuit) {
					return 0
				}
				sess.ReportError(err)
				return 1
			}
		}
		return 0
	}

	if err := sess.Run(stdin); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	var opts options
	fs := flag.NewFlagSet("atlas", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.configPath, "c", "", "Path to configuration file (shorthand)")
	fs.Var(&opts.commands, "e", "Run a shell command and exit (repeatable)")
	fs.Var(&opts.scripts, "script", "Run a Lua file at startup (repeatable)")
	fs.BoolVar(&opts.noColor, "no-color", false, "Disable colored error output")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "atlas - interactive dynamic array shell\n\n")
		fmt.Fprintf(stderr, "Usage: atlas [options]\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  atlas                              Start the shell\n")
		fmt.Fprintf(stderr, "  atlas -e 'push 1 2 3' -e print     Run commands and exit\n")
		fmt.Fprintf(stderr, "  atlas -script fill.lua < cmds.txt  Run a script, then commands from stdin\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "Error: unexpected arguments: %s\n", strings.Join(fs.Args(), " "))
		fs.Usage()
		return nil, fmt.Errorf("unexpected arguments")
	}
	return &opts, nil
}

// useColor resolves the configured colour mode. Auto enables colour only
// when the error output is a terminal.
func useColor(mode string, disabled bool, errOut io.Writer) bool {
	if disabled {
		return false
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := errOut.(*os.File)
	return ok && isTerminal(f)
}
