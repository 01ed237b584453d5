package dirsize

import (
	"context"
	"sync"

	"github.com/sourcegraph/conc"

	"github.com/idelchi/dirsize/internal/queue"
)

// walkPool runs cfg.Threads workers over a shared work queue. Every entry is
// its own unit of work, so a wide directory is spread over all workers at once.
//
// pending counts units that were pushed but not yet finished. Children are
// added before their parent is marked done, so it only drops to zero once
// every recursively discovered entry has been visited.
func walkPool(ctx context.Context, cfg Config, emit emitter) {
	work := queue.New[string]()

	var (
		pending sync.WaitGroup
		workers conc.WaitGroup
	)

	process := func(path string) {
		defer pending.Done()

		if ctx.Err() != nil {
			return
		}

		children := emit.visit(path)

		pending.Add(len(children))
		work.Push(children...)
	}

	for range cfg.Threads {
		workers.Go(func() {
			for {
				path, ok := work.Pop()
				if !ok {
					return
				}

				process(path)
			}
		})
	}

	pending.Add(len(cfg.Roots))
	work.Push(cfg.Roots...)

	pending.Wait()
	work.Close()

	// Re-panics if a worker panicked.
	workers.Wait()
}
