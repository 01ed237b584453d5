package dirsize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	events "github.com/docker/go-events"
)

// Engine selects the traversal implementation.
type Engine int

const (
	// EnginePool walks with a fixed pool of workers fed by an unbounded work
	// queue, one unit of work per entry.
	EnginePool Engine = iota
	// EngineFastwalk walks each root with fastwalk.
	EngineFastwalk
)

// String returns the flag spelling of the engine.
func (e Engine) String() string {
	switch e {
	case EnginePool:
		return "pool"
	case EngineFastwalk:
		return "fastwalk"
	default:
		return fmt.Sprintf("Engine(%d)", int(e))
	}
}

// ParseEngine parses the flag spelling of an engine.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pool", "":
		return EnginePool, nil
	case "fastwalk":
		return EngineFastwalk, nil
	default:
		return 0, fmt.Errorf("unknown engine %q: must be one of [pool fastwalk]", s)
	}
}

// Config holds the parameters of a walk. It is not modified by Walk.
type Config struct {
	// Roots are the paths to measure.
	Roots []string
	// Threads is the number of concurrent workers. Values below 1 mean 1.
	Threads int
	// Policy selects how each entry is measured.
	Policy SizePolicy
	// Engine selects the traversal implementation.
	Engine Engine
	// Logger receives debug output about the walk. Nil disables it.
	Logger *slog.Logger
}

// Walk measures every entry reachable from cfg.Roots and returns the total.
//
// Entries that cannot be stat'ed or directories that cannot be listed are
// reported in Result.Errors and do not stop the walk. A returned error means
// the configuration was invalid or ctx was cancelled before the walk finished.
func Walk(ctx context.Context, cfg Config) (*Result, error) {
	if len(cfg.Roots) == 0 {
		return nil, errors.New("no root paths given")
	}

	if cfg.Engine != EnginePool && cfg.Engine != EngineFastwalk {
		return nil, fmt.Errorf("invalid engine %v", cfg.Engine)
	}

	roots := make([]string, len(cfg.Roots))
	for i, root := range cfg.Roots {
		roots[i] = filepath.Clean(root)
	}

	cfg.Roots = roots
	cfg.Threads = max(cfg.Threads, 1)

	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	log.Debug("starting walk",
		"roots", cfg.Roots,
		"threads", cfg.Threads,
		"engine", cfg.Engine,
		"policy", cfg.Policy,
	)

	start := time.Now()

	collector := newCollector()
	sink := events.NewQueue(collector)
	emit := emitter{sink: sink, policy: cfg.Policy}

	switch cfg.Engine {
	case EngineFastwalk:
		walkFastwalk(ctx, cfg, emit)
	default:
		walkPool(ctx, cfg, emit)
	}

	// Close flushes every queued message into the collector before closing it.
	if err := sink.Close(); err != nil {
		return nil, fmt.Errorf("closing message queue: %w", err)
	}

	result := collector.Result()
	result.Policy = cfg.Policy
	result.Elapsed = time.Since(start)

	log.Debug("walk finished",
		"total_bytes", result.TotalBytes,
		"files", result.Files,
		"directories", result.Directories,
		"errors", len(result.Errors),
		"elapsed", result.Elapsed,
	)

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("walk interrupted: %w", err)
	}

	return result, nil
}

// emitter turns observations into messages for the collector.
type emitter struct {
	sink   events.Sink
	policy SizePolicy
}

// send delivers a message. A broken sink is a programming fault, not a
// property of the walked tree, so it panics.
func (e emitter) send(event events.Event) {
	if err := e.sink.Write(event); err != nil {
		panic(fmt.Sprintf("dirsize: delivering message: %v", err))
	}
}

// measure emits the size of an entry.
func (e emitter) measure(md Metadata) {
	id, ok := resolveID(md)

	e.send(sizeMessage{
		id:    id,
		hasID: ok,
		size:  e.policy.Size(md),
		dir:   md.Dir,
	})
}

// fail emits a recoverable error for path.
func (e emitter) fail(kind ErrorKind, path string, err error) {
	e.send(&PathError{Kind: kind, Path: path, Err: err})
}

// visit measures one entry and returns the paths of its children, if it is
// a directory that could be listed.
func (e emitter) visit(path string) []string {
	md, err := Lstat(path)
	if err != nil {
		e.fail(NoMetadataForPath, path, err)

		return nil
	}

	e.measure(md)

	if !md.Dir {
		return nil
	}

	names, err := readDirNames(path)
	if err != nil {
		e.fail(CouldNotReadDir, path, err)

		return nil
	}

	children := make([]string, len(names))
	for i, name := range names {
		children[i] = filepath.Join(path, name)
	}

	return children
}
