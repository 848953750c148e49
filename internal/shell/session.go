package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emirpasic/gods/containers"

	"github.com/dshills/atlas/internal/config"
	"github.com/dshills/atlas/internal/script"
	"github.com/dshills/atlas/internal/vector"
)

const (
	ansiRed   = "\033[31m"
	ansiReset = "\033[0m"
)

// Session executes shell commands against one array.
type Session struct {
	arr      *vector.Array[float64]
	scripts  *script.State
	scriptCx *script.Context
	commands *registry

	out    io.Writer
	errOut io.Writer
	color  bool
	prompt string
	format string
}

// Option configures a Session.
type Option func(*Session)

// WithOutput sets the writer for command output and Lua print.
func WithOutput(w io.Writer) Option {
	return func(s *Session) {
		s.out = w
	}
}

// WithErrorOutput sets the writer Run reports command errors to.
func WithErrorOutput(w io.Writer) Option {
	return func(s *Session) {
		s.errOut = w
	}
}

// WithColor enables red error messages.
func WithColor(enable bool) Option {
	return func(s *Session) {
		s.color = enable
	}
}

// WithPrompt overrides the configured prompt. An empty prompt disables it.
func WithPrompt(prompt string) Option {
	return func(s *Session) {
		s.prompt = prompt
	}
}

// New creates a session seeded from cfg and runs the configured startup scripts.
func New(cfg *config.Config, opts ...Option) (*Session, error) {
	s := &Session{
		out:    os.Stdout,
		errOut: os.Stderr,
		color:  cfg.Shell.Color == config.ColorAlways,
		prompt: cfg.Shell.Prompt,
		format: cfg.Shell.Format,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.arr = vector.From(cfg.Array.Initial...)
	s.arr.Reserve(cfg.Array.Capacity)

	s.scriptCx = &script.Context{Array: s.arr, MaxCapacity: config.MaxCapacity}
	s.scripts = script.NewState(
		script.WithOutput(s.out),
		script.WithExecutionTimeout(cfg.Shell.ScriptTimeout),
	)
	if err := s.scripts.Register(script.NewVectorModule(s.scriptCx)); err != nil {
		s.scripts.Close()
		return nil, err
	}

	s.commands = newRegistry()
	registerCommands(s.commands)

	for _, path := range cfg.Shell.Scripts {
		if err := s.scripts.DoFile(path); err != nil {
			s.scripts.Close()
			return nil, fmt.Errorf("startup script: %w", err)
		}
	}
	return s, nil
}

// Array returns the session array.
func (s *Session) Array() *vector.Array[float64] {
	return s.arr
}

// container exposes the session array through the generic container contract.
func (s *Session) container() containers.Container {
	return s.arr
}

// setArray replaces the session array, keeping the Lua binding in step.
func (s *Session) setArray(arr *vector.Array[float64]) {
	s.arr = arr
	s.scriptCx.Array = arr
}

// Close releases the Lua state.
func (s *Session) Close() error {
	return s.scripts.Close()
}

// Exec runs one command line. Blank lines and lines starting with # are ignored.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	name, rest, _ := strings.Cut(line, " ")
	cmd, ok := s.commands.get(name)
	if !ok {
		return fmt.Errorf("%w: %s (try help)", ErrUnknownCommand, name)
	}

	var args []string
	if cmd.raw {
		if rest = strings.TrimSpace(rest); rest != "" {
			args = []string{rest}
		}
	} else {
		args = strings.Fields(rest)
	}
	if err := cmd.checkArgs(args); err != nil {
		return err
	}
	if err := cmd.run(s, args); err != nil {
		if errors.Is(err, ErrQuit) {
			return err
		}
		return fmt.Errorf("%s: %w", cmd.name, err)
	}
	return nil
}

// Run reads commands from r until EOF or quit. Command errors are reported
// and do not stop the loop; read errors do.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for {
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		if !scanner.Scan() {
			break
		}
		if err := s.Exec(scanner.Text()); err != nil {
			if errors.Is(err, ErrQuit) {
				return nil
			}
			s.ReportError(err)
		}
	}
	if s.prompt != "" {
		fmt.Fprintln(s.out)
	}
	return scanner.Err()
}

// ReportError writes err to the error output, in red when colour is on.
func (s *Session) ReportError(err error) {
	if s.color {
		fmt.Fprintf(s.errOut, "%serror: %v%s\n", ansiRed, err, ansiReset)
		return
	}
	fmt.Fprintf(s.errOut, "error: %v\n", err)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
