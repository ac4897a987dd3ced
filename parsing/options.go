package parsing

import (
	"github.com/owl-domain/markdown"
	"github.com/owl-domain/markdown/internal/pool"
)

// Option configures a scanner during creation.
type Option func(*config)

type config struct {
	origin markdown.Position
	pool   *pool.Ints
}

// WithOrigin starts the cursor at origin instead of (0, 1, 1). Use it when
// scanning a fragment whose positions should be reported in the coordinates
// of the enclosing document. Peek offsets stay relative to the cursor.
func WithOrigin(origin markdown.Position) Option {
	return func(c *config) {
		c.origin = origin
	}
}

// withPool rents lookup tables from p instead of pool.Default.
func withPool(p *pool.Ints) Option {
	return func(c *config) {
		if p != nil {
			c.pool = p
		}
	}
}

func newConfig(opts []Option) config {
	c := config{pool: pool.Default}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
