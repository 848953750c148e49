package shell

import (
	"fmt"
	"sort"
)

// command is one shell verb.
type command struct {
	name    string
	usage   string
	summary string
	minArgs int
	maxArgs int // -1 for unbounded
	raw     bool
	run     func(s *Session, args []string) error
}

// registry maps command names to commands.
type registry struct {
	commands map[string]*command
}

func newRegistry() *registry {
	return &registry{commands: make(map[string]*command)}
}

// register adds cmd under its name and each alias.
func (r *registry) register(cmd *command, aliases ...string) {
	r.commands[cmd.name] = cmd
	for _, alias := range aliases {
		r.commands[alias] = cmd
	}
}

func (r *registry) get(name string) (*command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// list returns the distinct commands sorted by name.
func (r *registry) list() []*command {
	seen := make(map[*command]bool, len(r.commands))
	cmds := make([]*command, 0, len(r.commands))
	for _, cmd := range r.commands {
		if seen[cmd] {
			continue
		}
		seen[cmd] = true
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].name < cmds[j].name
	})
	return cmds
}

func (c *command) checkArgs(args []string) error {
	if len(args) < c.minArgs || (c.maxArgs >= 0 && len(args) > c.maxArgs) {
		return fmt.Errorf("%w: %s", ErrUsage, c.usage)
	}
	return nil
}
