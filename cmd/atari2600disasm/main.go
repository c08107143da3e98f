package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"atari2600disasm"
)

// parseSmartInt accepts decimal, 0x-prefixed, and $-prefixed hexadecimal,
// matching original_source/dis6502.py's smart_int.
func parseSmartInt(s string) (int64, error) {
	switch {
	case strings.HasPrefix(s, "0x"):
		return strconv.ParseInt(s[2:], 16, 64)
	case strings.HasPrefix(s, "$"):
		return strconv.ParseInt(s[1:], 16, 64)
	default:
		return strconv.ParseInt(s, 10, 64)
	}
}

// parseSymbolPair parses a NAME=VALUE argument, matching
// original_source/dis6502.py's pair.
func parseSymbolPair(s string) (string, uint16, error) {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return "", 0, &disasm.MalformedArgument{Value: s, Reason: "expected NAME=VALUE"}
	}
	v, err := parseSmartInt(value)
	if err != nil {
		return "", 0, &disasm.MalformedArgument{Value: s, Reason: err.Error()}
	}
	return name, uint16(v), nil
}

func main() {
	// dis6502.py prints failures to stdout (`print e`) before exiting 1;
	// cli.ErrWriter defaults to stderr, so redirect it to match.
	cli.ErrWriter = os.Stdout

	app := &cli.App{
		Name:      "atari2600disasm",
		Usage:     "Disassemble an Atari 2600 ROM",
		ArgsUsage: "romfile",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "loglevel",
				Value: "warn",
				Usage: "one of debug, info, warn",
			},
			&cli.StringFlag{
				Name:  "org",
				Usage: "override the inferred origin address (e.g. $F000)",
			},
			&cli.StringSliceFlag{
				Name:  "code",
				Usage: "additional known code entry points",
			},
			&cli.StringSliceFlag{
				Name:  "code_ref",
				Usage: "additional addresses holding a pointer to code",
			},
			&cli.StringSliceFlag{
				Name:  "symbol",
				Usage: "NAME=VALUE symbol definitions",
			},
			&cli.BoolFlag{Name: "memory_map", Aliases: []string{"m"}, Usage: "render the ASCII memory-use map"},
			&cli.BoolFlag{Name: "call_graph", Aliases: []string{"c"}, Usage: "render the call/jump graph in DOT format"},
			&cli.BoolFlag{Name: "disassemble", Aliases: []string{"d"}, Usage: "render the reassemblable textual listing"},
			&cli.StringFlag{Name: "addr_info", Aliases: []string{"a"}, Usage: "print label and annotations for a single address"},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stdout, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return cli.Exit("expected exactly one romfile argument", 1)
	}

	level, err := logrus.ParseLevel(c.String("loglevel"))
	if err != nil {
		return cli.Exit(fmt.Sprintf("invalid --loglevel: %v", err), 1)
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	selected := 0
	for _, set := range []bool{c.Bool("memory_map"), c.Bool("call_graph"), c.Bool("disassemble"), c.IsSet("addr_info")} {
		if set {
			selected++
		}
	}
	if selected != 1 {
		return cli.Exit("exactly one of -m/-c/-d/-a is required", 1)
	}

	romfile := c.Args().First()
	rom, err := os.ReadFile(romfile)
	if err != nil {
		return cli.Exit(err, 1)
	}

	var org *uint16
	if c.IsSet("org") {
		v, err := parseSmartInt(c.String("org"))
		if err != nil {
			return cli.Exit(&disasm.MalformedArgument{Value: c.String("org"), Reason: err.Error()}, 1)
		}
		o := uint16(v)
		org = &o
	}

	symbols := disasm.DefaultSymbols()
	for _, s := range c.StringSlice("symbol") {
		name, value, err := parseSymbolPair(s)
		if err != nil {
			return cli.Exit(err, 1)
		}
		symbols[value] = name
	}

	mem, err := disasm.LoadROM(rom, org, symbols)
	if err != nil {
		return cli.Exit(err, 1)
	}
	logrus.Infof("loaded %s", mem)

	codeRefs := []uint16{uint16(mem.End() - 4)}
	for _, s := range c.StringSlice("code_ref") {
		v, err := parseSmartInt(s)
		if err != nil {
			return cli.Exit(&disasm.MalformedArgument{Value: s, Reason: err.Error()}, 1)
		}
		codeRefs = append(codeRefs, uint16(v))
	}

	starts := make([]uint16, 0, len(codeRefs))
	for _, ref := range codeRefs {
		mem.Annotate(ref, disasm.AnnCodeRef)
		starts = append(starts, mem.GetWord(ref))
	}

	for _, s := range c.StringSlice("code") {
		v, err := parseSmartInt(s)
		if err != nil {
			return cli.Exit(&disasm.MalformedArgument{Value: s, Reason: err.Error()}, 1)
		}
		starts = append(starts, uint16(v))
	}

	valid := starts[:0]
	for _, s := range starts {
		if !mem.HasAddr(s) {
			logrus.Warn((&disasm.OutOfRange{Addr: s}).Error())
			continue
		}
		valid = append(valid, s)
	}
	starts = valid
	if len(starts) == 0 {
		return cli.Exit("no valid entry points to trace from", 1)
	}

	mem.AddSymbol(starts[0], "START")
	for _, s := range starts[1:] {
		mem.AddSymbol(s, fmt.Sprintf("L%04X", s))
	}

	// TraceCode panics with the decode error when it walks into an unknown
	// opcode; report it like every other failure.
	if err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				e, ok := r.(error)
				if !ok {
					panic(r)
				}
				err = e
			}
		}()
		disasm.TraceCode(mem, starts)
		return nil
	}(); err != nil {
		return cli.Exit(err, 1)
	}

	switch {
	case c.Bool("memory_map"):
		fmt.Print(disasm.MemoryMapString(mem, 128))
	case c.Bool("disassemble"):
		fmt.Print(disasm.Listing(mem))
	case c.Bool("call_graph"):
		if err := disasm.CallGraph(os.Stdout, mem, starts); err != nil {
			return cli.Exit(err, 1)
		}
	case c.IsSet("addr_info"):
		v, err := parseSmartInt(c.String("addr_info"))
		if err != nil {
			return cli.Exit(&disasm.MalformedArgument{Value: c.String("addr_info"), Reason: err.Error()}, 1)
		}
		addr := uint16(v)
		fmt.Printf("%#04x %s %s routine=%s\n", addr, mem.AddrLabel(addr, 4), string(mem.Annotations(addr)), mem.RoutineOf(addr))
	}

	return nil
}
