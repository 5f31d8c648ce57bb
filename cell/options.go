package cell

import (
	"go.uber.org/zap"

	"github.com/joshuapare/ucell/internal/logging"
)

// DefaultPageSlots is the number of slots per heap page when WithPageSlots
// is not given.
const DefaultPageSlots = 64

type config struct {
	pageSlots   int
	log         *zap.Logger
	generations bool
}

// Option configures a Heap.
type Option func(*config)

// WithPageSlots sets how many slots each page holds. Values below 1 are
// treated as 1.
func WithPageSlots(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.pageSlots = n
	}
}

// WithLogger routes the heap's debug logging to lg.
func WithLogger(lg *zap.Logger) Option {
	return func(c *config) {
		if lg != nil {
			c.log = lg
		}
	}
}

// WithGenerations enables per-slot generation counters so that checked
// accessors can detect handles to released slots.
func WithGenerations() Option {
	return func(c *config) {
		c.generations = true
	}
}

func newConfig(opts []Option) config {
	c := config{pageSlots: DefaultPageSlots}
	for _, o := range opts {
		o(&c)
	}
	if c.log == nil {
		c.log = logging.Named("cell")
	}
	return c
}
