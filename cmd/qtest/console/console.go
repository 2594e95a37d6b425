// Package console implements the qtest command interpreter.
//
// A console holds a chain of queues and runs line oriented commands against the
// current one, checking every result against the queue invariants. Commands are
// read from a script or an interactive prompt.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/jaswdr/faker"
	"github.com/mgnsk/lqueue"
	"github.com/mgnsk/lqueue/alloc"
	"github.com/mgnsk/lqueue/internal/logger"
	"github.com/peterh/liner"
)

// ErrLeak is returned by Close when allocated blocks were not returned.
var ErrLeak = errors.New("allocated blocks not freed")

// Config configures a console.
type Config struct {
	// FailPercent is the chance of an allocation being refused.
	FailPercent int
	// Length is the size of the buffer removed values are copied into.
	Length int
	// Descend selects descending order for sort and merge.
	Descend bool
	// Numeric compares values as integers when both parse as one.
	Numeric bool
	// Seed seeds random values and allocation failures.
	Seed int64
	// Echo prints every command before running it.
	Echo bool
}

// DefaultConfig returns the default console configuration.
func DefaultConfig() Config {
	return Config{
		Length: 1024,
		Echo:   true,
	}
}

type command struct {
	name  string
	short string
	run   func(args []string) error
	args  []string
}

// Console is a queue command interpreter.
type Console struct {
	cfg Config
	log logger.Logger
	out io.Writer

	faulty  *alloc.Faulty
	tracker *alloc.Tracker
	fake    faker.Faker

	chain  *lqueue.Chain
	cur    *lqueue.Context
	nextID int

	commands     map[string]*command
	commandsList []*command
	helpMessage  string

	errors int
	closed bool
}

// New creates a console writing command output to out.
func New(cfg Config, log logger.Logger, out io.Writer) *Console {
	faulty := alloc.NewFaulty(alloc.Heap, cfg.FailPercent, rand.NewSource(cfg.Seed))

	c := &Console{
		cfg:      cfg,
		log:      log,
		out:      out,
		faulty:   faulty,
		tracker:  alloc.NewTracker(faulty),
		fake:     faker.NewWithSeed(rand.NewSource(cfg.Seed)),
		chain:    lqueue.NewChain(),
		commands: make(map[string]*command),
	}

	c.initCommands()
	c.helpInit()

	return c
}

func (c *Console) register(cmd *command) {
	c.commandsList = append(c.commandsList, cmd)
	c.commands[cmd.name] = cmd
}

func (c *Console) helpInit() {
	var namelen, shortlen int
	for _, cmd := range c.commandsList {
		namelen = max(namelen, len(cmd.name))
		shortlen = max(shortlen, len(cmd.short))
	}

	var str strings.Builder
	for _, cmd := range c.commandsList {
		str.WriteString(padRight(cmd.name, namelen+2))
		str.WriteString(padRight(cmd.short, shortlen+2))
		if len(cmd.args) > 0 {
			str.WriteString("args: " + strings.Join(cmd.args, ","))
		}
		str.WriteString("\n")
	}

	c.helpMessage = str.String()
}

func padRight(s string, n int) string {
	if len(s) >= n {
		return s
	}
	return s + strings.Repeat(" ", n-len(s))
}

// Errors returns the number of failed commands.
func (c *Console) Errors() int {
	return c.errors
}

// Execute runs a single command line. It returns false when the console should quit.
func (c *Console) Execute(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return true
	}

	if c.cfg.Echo {
		fmt.Fprintf(c.out, "cmd> %s\n", line)
	}

	fields := strings.Fields(line)
	name, args := fields[0], fields[1:]

	if name == "quit" || name == "exit" {
		return false
	}

	cmd, ok := c.commands[name]
	if !ok {
		c.fail(fmt.Errorf("unknown command %q, run help for usage", name))
		return true
	}

	if len(args) < len(cmd.args) {
		c.fail(fmt.Errorf("%s needs %d arguments, have %d", name, len(cmd.args), len(args)))
		return true
	}

	if err := cmd.run(args); err != nil {
		c.fail(fmt.Errorf("%s: %w", name, err))
		return true
	}

	if err := c.check(); err != nil {
		c.fail(fmt.Errorf("%s: %w", name, err))
	}

	return true
}

func (c *Console) fail(err error) {
	c.errors++
	c.log.Errorf("%s", err)
}

// check refreshes the cached size of the current queue and validates its links.
func (c *Console) check() error {
	if c.cur == nil || c.cur.Q == nil {
		return nil
	}

	c.cur.Size = c.cur.Q.Size()

	return c.cur.Q.Validate()
}

// RunScript runs every line of r until quit or end of input.
func (c *Console) RunScript(r io.Reader) error {
	s := bufio.NewScanner(r)
	for s.Scan() {
		if !c.Execute(s.Text()) {
			return nil
		}
	}

	return s.Err()
}

// RunInteractive reads commands from an interactive prompt until quit,
// end of input or an interrupt.
func (c *Console) RunInteractive() error {
	l := liner.NewLiner()
	defer l.Close()

	l.SetCtrlCAborts(true)
	l.SetCompleter(c.completer)

	echo := c.cfg.Echo
	c.cfg.Echo = false
	defer func() { c.cfg.Echo = echo }()

	for {
		line, err := l.Prompt("cmd> ")
		switch {
		case errors.Is(err, io.EOF), errors.Is(err, liner.ErrPromptAborted):
			return nil
		case err != nil:
			return err
		}

		l.AppendHistory(line)

		if !c.Execute(line) {
			return nil
		}
	}
}

func (c *Console) completer(line string) []string {
	var names []string
	for _, cmd := range c.commandsList {
		if strings.HasPrefix(cmd.name, line) {
			names = append(names, cmd.name)
		}
	}
	return names
}

// Close frees every queue and reports blocks that were never returned.
func (c *Console) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true

	c.chain.Do(func(ctx *lqueue.Context) bool {
		c.chain.Remove(ctx)
		ctx.Q.Free()
		return true
	})
	c.cur = nil

	if blocks := c.tracker.Blocks(); blocks != 0 {
		return fmt.Errorf("%w: %d blocks, %d bytes", ErrLeak, blocks, c.tracker.Bytes())
	}

	c.log.Debugf("all blocks freed")

	return nil
}
