package multisplit

import "go.uber.org/zap"

// host carries tree-wide collaborators shared by every item of one layout.
// A nil host marks a dummy tree: the invisible clones used by drop-rect
// simulation, and free items not yet inserted anywhere. Dummy trees skip
// separator bookkeeping, events and sanity checking.
type host struct {
	logger *zap.Logger
	sink   EventSink
}

// RootOption is a functional option for configuring a layout root.
type RootOption func(*host)

// WithLogger sets the diagnostic logger. Default is zap.NewNop().
func WithLogger(logger *zap.Logger) RootOption {
	return func(h *host) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// WithEventSink sets the sink receiving change notifications.
// Default is no sink.
func WithEventSink(sink EventSink) RootOption {
	return func(h *host) {
		h.sink = sink
	}
}

func newHost(opts ...RootOption) *host {
	h := &host{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(h)
	}
	return h
}
