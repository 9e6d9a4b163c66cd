package console

import (
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/huynhanx03/go-versionqueue/pkg/datastructs/queue"
)

// Print writes the contents of q at version v, oldest first.
// Only versions produced by a mutation, [1, current], are printable; an empty
// window prints NoticeEmpty.
func Print(w io.Writer, q *queue.Versioned[int], v int) error {
	if v < 1 || v > q.Version() {
		return errors.Wrapf(queue.ErrInvalidVersion, "print version %d", v)
	}

	win, err := q.Window(v)
	if err != nil {
		return err
	}
	if win.IsEmpty() {
		fmt.Fprintln(w, NoticeEmpty)
		return nil
	}

	fmt.Fprintln(w, NoticeOrder)
	err = q.Each(v, func(i int, item int) error {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, item)
		return nil
	})
	fmt.Fprintln(w)
	return err
}
