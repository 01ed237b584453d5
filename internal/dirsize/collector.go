package dirsize

import (
	"fmt"

	events "github.com/docker/go-events"
)

// sizeMessage is one entry's contribution to the total.
type sizeMessage struct {
	id    UniqueID
	hasID bool
	size  uint64
	dir   bool
}

// collector aggregates the messages of all walkers. It is driven by a single
// events.Queue goroutine, so it is the only writer of its state and needs no lock.
type collector struct {
	seen        map[UniqueID]struct{}
	totalBytes  uint64
	files       int64
	directories int64
	errs        []*PathError
	done        chan *Result
}

// newCollector creates an empty collector.
func newCollector() *collector {
	return &collector{
		seen: make(map[UniqueID]struct{}),
		errs: make([]*PathError, 0),
		done: make(chan *Result, 1),
	}
}

// Write implements events.Sink.
func (c *collector) Write(event events.Event) error {
	switch msg := event.(type) {
	case sizeMessage:
		c.add(msg)
	case *PathError:
		c.errs = append(c.errs, msg)
	default:
		return fmt.Errorf("collector: unexpected event %T", event)
	}

	return nil
}

// add counts an entry unless its id has been counted before.
func (c *collector) add(msg sizeMessage) {
	if msg.dir {
		c.directories++
	}

	if msg.hasID {
		if _, ok := c.seen[msg.id]; ok {
			return
		}

		c.seen[msg.id] = struct{}{}
	}

	c.totalBytes += msg.size

	if !msg.dir {
		c.files++
	}
}

// Close implements events.Sink. The queue calls it once every message has
// been written, which makes it the point where the result is final.
func (c *collector) Close() error {
	c.done <- c.finalize()

	return nil
}

// finalize produces the Result from the collected data.
func (c *collector) finalize() *Result {
	return &Result{
		TotalBytes:  c.totalBytes,
		Files:       c.files,
		Directories: c.directories,
		Errors:      c.errs,
	}
}

// Result blocks until the collector has been closed and returns the result.
func (c *collector) Result() *Result {
	return <-c.done
}
