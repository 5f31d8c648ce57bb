package offheap

import (
	"go.uber.org/zap"

	"github.com/joshuapare/ucell/internal/logging"
)

// DefaultRegionSlots is the number of slots requested per region when
// WithRegionSlots is not given. The region is then rounded up to whole pages.
const DefaultRegionSlots = 1024

type config struct {
	regionSlots int
	log         *zap.Logger
}

// Option configures an Arena.
type Option func(*config)

// WithRegionSlots sets the minimum number of slots in each mapped region.
// Values below 1 are treated as 1.
func WithRegionSlots(n int) Option {
	return func(c *config) {
		if n < 1 {
			n = 1
		}
		c.regionSlots = n
	}
}

// WithLogger routes the arena's debug logging to lg.
func WithLogger(lg *zap.Logger) Option {
	return func(c *config) {
		if lg != nil {
			c.log = lg
		}
	}
}

func newConfig(opts []Option) config {
	c := config{regionSlots: DefaultRegionSlots}
	for _, o := range opts {
		o(&c)
	}
	if c.log == nil {
		c.log = logging.Named("offheap")
	}
	return c
}
