package console

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mgnsk/lqueue"
)

var (
	errNoQueue   = errors.New("no queue selected")
	errEmpty     = errors.New("queue is empty")
	errMismatch  = errors.New("removed value does not match")
	errBadOption = errors.New("unknown option")
)

func (c *Console) initCommands() {
	// Queue selection
	c.register(&command{"new", "Create a new queue and select it", c.newQueue, nil})
	c.register(&command{"free", "Free the selected queue", c.freeQueue, nil})
	c.register(&command{"prev", "Select the previous queue", c.prev, nil})
	c.register(&command{"next", "Select the next queue", c.next, nil})

	// Insert and remove
	c.register(&command{"ih", "Insert a value, or RAND for a random one, n times at the head", c.insert(true), []string{"str"}})
	c.register(&command{"it", "Insert a value, or RAND for a random one, n times at the tail", c.insert(false), []string{"str"}})
	c.register(&command{"rh", "Remove from the head, optionally checking the value", c.remove(true), nil})
	c.register(&command{"rt", "Remove from the tail, optionally checking the value", c.remove(false), nil})
	c.register(&command{"size", "Print the queue size", c.size, nil})
	c.register(&command{"show", "Print every queue", c.show, nil})

	// Algorithms
	c.register(&command{"dm", "Delete the middle element", c.deleteMid, nil})
	c.register(&command{"dedup", "Delete every run of duplicate values", c.deleteDup, nil})
	c.register(&command{"swap", "Swap every two adjacent elements", c.mutate((*lqueue.Queue).Swap), nil})
	c.register(&command{"reverse", "Reverse the queue", c.mutate((*lqueue.Queue).Reverse), nil})
	c.register(&command{"reverseK", "Reverse every group of k elements", c.reverseK, []string{"k"}})
	c.register(&command{"sort", "Sort the queue", c.sort, nil})
	c.register(&command{"descend", "Delete every element with a greater or equal one to its right", c.monotonic((*lqueue.Queue).Descend), nil})
	c.register(&command{"ascend", "Delete every element with a less or equal one to its right", c.monotonic((*lqueue.Queue).Ascend), nil})
	c.register(&command{"merge", "Merge every queue into the first one", c.merge, nil})

	// Misc
	c.register(&command{"option", "Set fail, length, descend or numeric", c.option, []string{"name", "value"}})
	c.register(&command{"log", "Print a message", c.logMessage, nil})
	c.register(&command{"help", "Print this help", c.help, nil})
	c.register(&command{"quit", "Free every queue and exit", nil, nil})
}

func (c *Console) current() (*lqueue.Queue, error) {
	if c.cur == nil || c.cur.Q == nil {
		return nil, errNoQueue
	}
	return c.cur.Q, nil
}

func (c *Console) newQueue([]string) error {
	opts := []lqueue.Option{lqueue.WithAllocator(c.tracker)}
	if c.cfg.Numeric {
		opts = append(opts, lqueue.WithComparator(lqueue.CompareNumeric))
	}

	q := lqueue.New(opts...)
	if q == nil {
		c.log.Warningf("queue allocation refused")
		return nil
	}

	ctx := lqueue.NewContext(q, c.nextID)
	c.nextID++

	c.chain.Add(ctx)
	c.cur = ctx

	return c.show(nil)
}

func (c *Console) freeQueue([]string) error {
	if c.cur == nil {
		return errNoQueue
	}

	ctx := c.cur
	c.cur = c.chain.Prev(ctx)
	if c.cur == nil {
		c.cur = c.chain.Next(ctx)
	}

	c.chain.Remove(ctx)
	ctx.Q.Free()

	return c.show(nil)
}

func (c *Console) prev([]string) error {
	if c.cur == nil {
		return errNoQueue
	}

	if p := c.chain.Prev(c.cur); p != nil {
		c.cur = p
	}

	return c.show(nil)
}

func (c *Console) next([]string) error {
	if c.cur == nil {
		return errNoQueue
	}

	if n := c.chain.Next(c.cur); n != nil {
		c.cur = n
	}

	return c.show(nil)
}

func (c *Console) insert(head bool) func(args []string) error {
	return func(args []string) error {
		q, err := c.current()
		if err != nil {
			return err
		}

		n := 1
		if len(args) > 1 {
			if n, err = strconv.Atoi(args[1]); err != nil || n < 1 {
				return fmt.Errorf("invalid count %q", args[1])
			}
		}

		insert := q.InsertTail
		if head {
			insert = q.InsertHead
		}

		for range n {
			v := args[0]
			if v == "RAND" {
				v = c.fake.Lexify(strings.Repeat("?", c.fake.IntBetween(5, 10)))
			}

			if !insert(v) {
				c.log.Warningf("insertion of %q refused", v)
				break
			}
		}

		return c.showCurrent()
	}
}

func (c *Console) remove(head bool) func(args []string) error {
	return func(args []string) error {
		q, err := c.current()
		if err != nil {
			return err
		}

		buf := make([]byte, c.cfg.Length)

		var e *lqueue.Element
		if head {
			e = q.RemoveHead(buf)
		} else {
			e = q.RemoveTail(buf)
		}

		if e == nil {
			return errEmpty
		}
		defer e.Release()

		got := e.Value
		if i := bytes.IndexByte(buf, 0); i >= 0 {
			got = string(buf[:i])
		}

		fmt.Fprintf(c.out, "Removed %s from queue\n", got)

		if len(args) > 0 && args[0] != got {
			return fmt.Errorf("%w: expected %q, got %q", errMismatch, args[0], got)
		}

		return c.showCurrent()
	}
}

func (c *Console) size([]string) error {
	q, err := c.current()
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Queue size = %d\n", q.Size())

	return nil
}

func (c *Console) deleteMid([]string) error {
	q, err := c.current()
	if err != nil {
		return err
	}

	if !q.DeleteMid() {
		return errEmpty
	}

	return c.showCurrent()
}

func (c *Console) deleteDup([]string) error {
	q, err := c.current()
	if err != nil {
		return err
	}

	if !q.DeleteDup() {
		return errEmpty
	}

	return c.showCurrent()
}

func (c *Console) mutate(f func(*lqueue.Queue)) func(args []string) error {
	return func([]string) error {
		q, err := c.current()
		if err != nil {
			return err
		}

		f(q)

		return c.showCurrent()
	}
}

func (c *Console) reverseK(args []string) error {
	q, err := c.current()
	if err != nil {
		return err
	}

	k, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid k %q", args[0])
	}

	q.ReverseK(k)

	return c.showCurrent()
}

func (c *Console) sort([]string) error {
	q, err := c.current()
	if err != nil {
		return err
	}

	q.Sort(c.cfg.Descend)

	return c.showCurrent()
}

func (c *Console) monotonic(f func(*lqueue.Queue) int) func(args []string) error {
	return func([]string) error {
		q, err := c.current()
		if err != nil {
			return err
		}

		n := f(q)
		fmt.Fprintf(c.out, "Queue size = %d\n", n)

		return c.showCurrent()
	}
}

func (c *Console) merge([]string) error {
	var contexts []*lqueue.Context
	c.chain.Do(func(ctx *lqueue.Context) bool {
		ctx.Size = ctx.Q.Size()
		contexts = append(contexts, ctx)
		return true
	})

	n, err := c.chain.Merge(c.cfg.Descend)
	if err != nil {
		return err
	}

	for _, ctx := range contexts {
		if !ctx.Linked() {
			ctx.Q.Free()
		}
	}

	c.cur = c.chain.First()
	fmt.Fprintf(c.out, "Merged %d queues, size = %d\n", len(contexts), n)

	return c.showCurrent()
}

func (c *Console) option(args []string) error {
	name, value := args[0], args[1]

	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid value %q for %s", value, name)
	}

	switch name {
	case "fail":
		c.faulty.SetPercent(n)
		c.cfg.FailPercent = c.faulty.Percent()
	case "length":
		if n < 0 {
			return fmt.Errorf("invalid length %d", n)
		}
		c.cfg.Length = n
	case "descend":
		c.cfg.Descend = n != 0
	case "numeric":
		c.cfg.Numeric = n != 0
	default:
		return fmt.Errorf("%w %q", errBadOption, name)
	}

	c.log.Debugf("option %s = %d", name, n)

	return nil
}

func (c *Console) logMessage(args []string) error {
	c.log.Infof("%s", strings.Join(args, " "))
	return nil
}

func (c *Console) help([]string) error {
	fmt.Fprint(c.out, c.helpMessage)
	return nil
}

func (c *Console) showCurrent() error {
	if c.cur == nil {
		return nil
	}

	fmt.Fprintf(c.out, "l = %s\n", formatValues(c.cur.Q.Values()))

	return nil
}

func (c *Console) show([]string) error {
	if c.chain.Len() == 0 {
		fmt.Fprintln(c.out, "No queues")
		return nil
	}

	c.chain.Do(func(ctx *lqueue.Context) bool {
		mark := ' '
		if ctx == c.cur {
			mark = '*'
		}
		fmt.Fprintf(c.out, "%cq%d = %s\n", mark, ctx.ID, formatValues(ctx.Q.Values()))
		return true
	})

	return nil
}

func formatValues(values []string) string {
	return "[" + strings.Join(values, " ") + "]"
}
