// Package console implements the interactive menu over a versioned queue.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-versionqueue/pkg/common/apperr"
	"github.com/huynhanx03/go-versionqueue/pkg/datastructs/queue"
)

const serviceName = "console"

// Menu choices
const (
	choiceEnqueue = iota + 1
	choiceDequeue
	choicePrint
	choiceVersion
	choiceSize
	choiceExit
)

const menu = `Enter your choice:
1. Enqueue
2. Dequeue
3. Print
4. Get current version number
5. Get current size of queue
6. Exit
`

// Notices written by the menu.
const (
	NoticeInvalidChoice  = "Invalid choice!"
	NoticeInvalidNumber  = "Please enter a valid number"
	NoticeInvalidVersion = "Please enter a valid version number"
	NoticeEmpty          = "Queue is empty..."
	NoticeUnderflow      = "Memory underflow, no elements in queue"
	NoticeOrder          = "Printing in order: first entry on the left"
	NoticeClosing        = "Closing user interface"
)

// Console reads menu choices from an input stream and applies them to a queue.
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	queue  *queue.Versioned[int]
	logger *zap.Logger
}

// New creates a Console bound to q.
func New(in io.Reader, out io.Writer, q *queue.Versioned[int], logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		queue:  q,
		logger: logger,
	}
}

// Run serves the menu until the user exits, the input ends or ctx is done.
func (c *Console) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, menu)
		choice, ok, err := c.readInt()
		if err != nil {
			return err
		}
		if !ok {
			// EOF ends the session like an explicit exit.
			fmt.Fprintln(c.out, NoticeClosing)
			return nil
		}
		if choice == choiceExit {
			fmt.Fprintln(c.out, NoticeClosing)
			return nil
		}
		if err := c.handle(choice); err != nil {
			return err
		}
	}
}

func (c *Console) handle(choice int) error {
	switch choice {
	case choiceEnqueue:
		return c.enqueue()
	case choiceDequeue:
		c.dequeue()
	case choicePrint:
		return c.print()
	case choiceVersion:
		fmt.Fprintf(c.out, "Current version number is: %d\n", c.queue.Version())
	case choiceSize:
		fmt.Fprintf(c.out, "Current size of queue is: %d\n", c.queue.Size())
	default:
		fmt.Fprintln(c.out, NoticeInvalidChoice)
	}
	return nil
}

func (c *Console) enqueue() error {
	fmt.Fprintln(c.out, "Enter a number to enqueue")
	v, ok, err := c.readInt()
	if err != nil || !ok {
		return err
	}
	c.queue.Enqueue(v)
	c.logger.Debug("enqueued", zap.Int("value", v), zap.Int("version", c.queue.Version()))
	return nil
}

func (c *Console) dequeue() {
	v, err := c.queue.Dequeue()
	if err != nil {
		c.report(MapQueueError(err, apperr.MsgDequeueFailed))
		return
	}
	fmt.Fprintf(c.out, "Front element dequeued, the element is: %d\n", v)
	c.logger.Debug("dequeued", zap.Int("value", v), zap.Int("version", c.queue.Version()))
}

func (c *Console) print() error {
	fmt.Fprintln(c.out, "Enter a version number:")
	v, ok, err := c.readInt()
	if err != nil || !ok {
		return err
	}
	if err := Print(c.out, c.queue, v); err != nil {
		c.report(MapQueueError(err, apperr.MsgPrintFailed))
	}
	return nil
}

// readInt reads the next line as an integer. ok is false on end of input.
// A malformed line prints a notice and is retried.
func (c *Console) readInt() (n int, ok bool, err error) {
	for c.in.Scan() {
		line := strings.TrimSpace(c.in.Text())
		if line == "" {
			continue
		}
		v, convErr := strconv.Atoi(line)
		if convErr != nil {
			c.report(apperr.MapError(serviceName, convErr, apperr.CodeInvalidInput, apperr.MsgInvalidInput))
			continue
		}
		return v, true, nil
	}
	if err := c.in.Err(); err != nil {
		return 0, false, apperr.MapError(serviceName, err, apperr.CodeInternal, apperr.MsgReadFailed)
	}
	return 0, false, nil
}

// report writes the notice matching e and logs it.
func (c *Console) report(e *apperr.AppError) {
	switch e.Code {
	case apperr.CodeUnderflow:
		fmt.Fprintln(c.out, NoticeUnderflow)
	case apperr.CodeInvalidVersion:
		fmt.Fprintln(c.out, NoticeInvalidVersion)
	case apperr.CodeInvalidInput:
		fmt.Fprintln(c.out, NoticeInvalidNumber)
	default:
		fmt.Fprintln(c.out, e.Message)
	}
	c.logger.Warn(e.Message, zap.Int("code", e.Code), zap.Error(e.Cause))
}

// MapQueueError maps queue errors to apperr.AppError
func MapQueueError(err error, msg string) *apperr.AppError {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, queue.ErrUnderflow):
		return apperr.MapError(serviceName, err, apperr.CodeUnderflow, msg)
	case errors.Is(err, queue.ErrInvalidVersion):
		return apperr.MapError(serviceName, err, apperr.CodeInvalidVersion, msg)
	default:
		return apperr.MapError(serviceName, err, apperr.CodeInternal, msg)
	}
}
