package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/utils"

	"github.com/dshills/atlas/internal/config"
	"github.com/dshills/atlas/internal/vector"
)

func registerCommands(r *registry) {
	r.register(&command{name: "push", usage: "push <value>...", summary: "append values", minArgs: 1, maxArgs: -1, run: cmdPush})
	r.register(&command{name: "pop", usage: "pop", summary: "remove the last element", run: cmdPop})
	r.register(&command{name: "insert", usage: "insert <index> <value>", summary: "insert a value before index", minArgs: 2, maxArgs: 2, run: cmdInsert})
	r.register(&command{name: "erase", usage: "erase <index>", summary: "remove the element at index", minArgs: 1, maxArgs: 1, run: cmdErase})
	r.register(&command{name: "at", usage: "at <index>", summary: "print the element at index", minArgs: 1, maxArgs: 1, run: cmdAt})
	r.register(&command{name: "set", usage: "set <index> <value>", summary: "overwrite the element at index", minArgs: 2, maxArgs: 2, run: cmdSet})
	r.register(&command{name: "first", usage: "first", summary: "print the first element", run: cmdFirst})
	r.register(&command{name: "last", usage: "last", summary: "print the last element", run: cmdLast})
	r.register(&command{name: "max", usage: "max", summary: "print the greatest element", run: cmdMax})
	r.register(&command{name: "size", usage: "size", summary: "print the number of elements", run: cmdSize})
	r.register(&command{name: "cap", usage: "cap", summary: "print the allocated capacity", run: cmdCap}, "capacity")
	r.register(&command{name: "empty", usage: "empty", summary: "print whether the array is empty", run: cmdEmpty})
	r.register(&command{name: "clear", usage: "clear", summary: "release all storage", run: cmdClear})
	r.register(&command{name: "shrink", usage: "shrink", summary: "reduce capacity to size", run: cmdShrink})
	r.register(&command{name: "reserve", usage: "reserve <n>", summary: "grow capacity to at least n", minArgs: 1, maxArgs: 1, run: cmdReserve})
	r.register(&command{name: "print", usage: "print", summary: "print the elements front to back", run: cmdPrint}, "p")
	r.register(&command{name: "sorted", usage: "sorted", summary: "print the elements in ascending order", run: cmdSorted})
	r.register(&command{name: "rprint", usage: "rprint", summary: "print the elements back to front", run: cmdRPrint})
	r.register(&command{name: "dump", usage: "dump [json|yaml]", summary: "print a snapshot", maxArgs: 1, run: cmdDump})
	r.register(&command{name: "load", usage: "load <json>", summary: "replace the array from a JSON snapshot or array", minArgs: 1, maxArgs: 1, raw: true, run: cmdLoad})
	r.register(&command{name: "lua", usage: "lua <code>", summary: "run Lua code", minArgs: 1, maxArgs: 1, raw: true, run: cmdLua})
	r.register(&command{name: "run", usage: "run <file>", summary: "run a Lua file", minArgs: 1, maxArgs: 1, raw: true, run: cmdRun})
	r.register(&command{name: "help", usage: "help", summary: "list commands", run: cmdHelp}, "?")
	r.register(&command{name: "quit", usage: "quit", summary: "leave the shell", run: cmdQuit}, "exit")
}

func parseIndex(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: index %q is not an integer", ErrUsage, arg)
	}
	return i, nil
}

func parseValue(arg string) (float64, error) {
	v, err := strconv.ParseFloat(arg, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: value %q is not a number", ErrUsage, arg)
	}
	return v, nil
}

func cmdPush(s *Session, args []string) error {
	values := make([]float64, 0, len(args))
	for _, arg := range args {
		v, err := parseValue(arg)
		if err != nil {
			return err
		}
		values = append(values, v)
	}
	for _, v := range values {
		s.arr.PushBack(v)
	}
	return nil
}

func cmdPop(s *Session, _ []string) error {
	if s.arr.IsEmpty() {
		return vector.ErrEmpty
	}
	s.arr.PopBack()
	return nil
}

func cmdInsert(s *Session, args []string) error {
	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(args[1])
	if err != nil {
		return err
	}
	return s.arr.Insert(i, v)
}

func cmdErase(s *Session, args []string) error {
	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	return s.arr.Erase(i)
}

func cmdAt(s *Session, args []string) error {
	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	v, err := s.arr.At(i)
	if err != nil {
		return err
	}
	s.printf("%v\n", v)
	return nil
}

func cmdSet(s *Session, args []string) error {
	i, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	v, err := parseValue(args[1])
	if err != nil {
		return err
	}
	p, err := s.arr.AtPtr(i)
	if err != nil {
		return err
	}
	*p = v
	return nil
}

func printResult(s *Session, v float64, err error) error {
	if err != nil {
		return err
	}
	s.printf("%v\n", v)
	return nil
}

func cmdFirst(s *Session, _ []string) error {
	v, err := s.arr.First()
	return printResult(s, v, err)
}

func cmdLast(s *Session, _ []string) error {
	v, err := s.arr.Last()
	return printResult(s, v, err)
}

func cmdMax(s *Session, _ []string) error {
	v, err := vector.Max(s.arr)
	return printResult(s, v, err)
}

func cmdSize(s *Session, _ []string) error {
	s.printf("%d\n", s.container().Size())
	return nil
}

func cmdCap(s *Session, _ []string) error {
	s.printf("%d\n", s.arr.Capacity())
	return nil
}

func cmdEmpty(s *Session, _ []string) error {
	s.printf("%t\n", s.container().Empty())
	return nil
}

func cmdClear(s *Session, _ []string) error {
	s.arr.Clear()
	return nil
}

func cmdShrink(s *Session, _ []string) error {
	s.arr.Shrink()
	return nil
}

func cmdReserve(s *Session, args []string) error {
	n, err := parseIndex(args[0])
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("%w: capacity must be non-negative", ErrUsage)
	}
	if n > config.MaxCapacity {
		return fmt.Errorf("%w: capacity %d exceeds limit %d", ErrUsage, n, config.MaxCapacity)
	}
	s.arr.Reserve(n)
	return nil
}

func cmdPrint(s *Session, _ []string) error {
	s.printf("%s\n", s.container().String())
	return nil
}

// cmdSorted prints a sorted copy; the array itself keeps its order.
func cmdSorted(s *Session, _ []string) error {
	values := s.container().Values()
	utils.Sort(values, utils.Float64Comparator)
	s.printf("%v\n", values)
	return nil
}

func cmdRPrint(s *Session, _ []string) error {
	parts := make([]string, 0, s.arr.Size())
	for c := s.arr.CRBegin(); !c.Equal(s.arr.CREnd()); c.Next() {
		parts = append(parts, fmt.Sprint(c.Value()))
	}
	s.printf("[%s]\n", strings.Join(parts, " "))
	return nil
}

func cmdDump(s *Session, args []string) error {
	format := s.format
	if len(args) == 1 {
		format = args[0]
	}

	var (
		out []byte
		err error
	)
	switch format {
	case config.FormatJSON:
		if out, err = EncodeJSON(s.arr); err == nil {
			out = append(out, '\n')
		}
	case config.FormatYAML:
		out, err = EncodeYAML(s.arr)
	default:
		return fmt.Errorf("%w: dump [json|yaml]", ErrUsage)
	}
	if err != nil {
		return err
	}
	_, err = s.out.Write(out)
	return err
}

func cmdLoad(s *Session, args []string) error {
	arr, err := DecodeJSON([]byte(args[0]))
	if err != nil {
		return err
	}
	s.setArray(arr)
	return nil
}

func cmdLua(s *Session, args []string) error {
	return s.scripts.DoString(args[0])
}

func cmdRun(s *Session, args []string) error {
	return s.scripts.DoFile(args[0])
}

func cmdHelp(s *Session, _ []string) error {
	for _, cmd := range s.commands.list() {
		s.printf("  %-24s %s\n", cmd.usage, cmd.summary)
	}
	return nil
}

func cmdQuit(_ *Session, _ []string) error {
	return ErrQuit
}
