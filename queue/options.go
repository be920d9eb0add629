package queue

import "github.com/arloliu/go-fifo/logger"

// config holds the settings shared by Queue and SyncQueue.
type config struct {
	// prealloc is the capacity of a freshly created or cleared buffer, and the minimum
	// capacity of the buffer produced by compaction.
	// Defaults to 0.
	prealloc int

	// logger receives debug events for compaction and clear.
	// Defaults to nil, which disables logging.
	logger logger.Logger
}

// Option represents a functional option for configuring a queue.
type Option interface {
	apply(*config)
}

type optFunc struct {
	name      string
	applyFunc func(*config)
}

func (o *optFunc) apply(cfg *config) { o.applyFunc(cfg) }

// String returns the name of the option.
func (o *optFunc) String() string { return o.name }

func newOptFunc(name string, f func(*config)) *optFunc {
	return &optFunc{name: name, applyFunc: f}
}

func newConfig(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&cfg)
		}
	}

	return cfg
}

// WithPrealloc sets the buffer capacity allocated when the queue is created or cleared.
//
// Pre-allocation avoids the first few slice growths for workloads with a known typical
// depth. Negative values are treated as 0.
func WithPrealloc(n int) Option {
	return newOptFunc("WithPrealloc", func(cfg *config) {
		cfg.prealloc = max(n, 0)
	})
}

// WithLogger sets the logger that receives buffer maintenance events at debug level.
//
// Passing nil disables logging.
func WithLogger(l logger.Logger) Option {
	return newOptFunc("WithLogger", func(cfg *config) {
		cfg.logger = l
	})
}
