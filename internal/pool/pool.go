// Package pool rents []int scratch buffers for grapheme lookup tables.
//
// Each Rental is owned by exactly one holder and must be released once.
// Release is idempotent so holders can release from every exit path.
package pool

import (
	"sync"
	"sync/atomic"
)

// maxPooledCap bounds the buffers kept for reuse; larger ones are left to GC.
const maxPooledCap = 1 << 20

// Ints hands out []int buffers backed by a sync.Pool.
// It is safe for concurrent use; individual rentals are not.
type Ints struct {
	pool        sync.Pool
	outstanding atomic.Int64
}

// Default is the pool used by scanners unless configured otherwise.
var Default = NewInts()

// NewInts creates an empty pool.
func NewInts() *Ints {
	return &Ints{
		pool: sync.Pool{
			New: func() interface{} {
				s := make([]int, 0, 64)
				return &s
			},
		},
	}
}

// Rent returns a rental whose slice has length n. Contents are unspecified.
func (p *Ints) Rent(n int) *Rental {
	if n < 0 {
		n = 0
	}
	s := p.pool.Get().(*[]int)
	if cap(*s) < n {
		*s = make([]int, n)
	} else {
		*s = (*s)[:n]
	}
	p.outstanding.Add(1)
	return &Rental{owner: p, buf: s}
}

// Outstanding reports the number of rentals not yet released.
func (p *Ints) Outstanding() int64 {
	return p.outstanding.Load()
}

// Rental is exclusive ownership of one pooled buffer.
type Rental struct {
	owner *Ints
	buf   *[]int
}

// Ints returns the rented slice, or nil after Release.
func (r *Rental) Ints() []int {
	if r == nil || r.buf == nil {
		return nil
	}
	return *r.buf
}

// Released reports whether the buffer has gone back to the pool.
func (r *Rental) Released() bool {
	return r == nil || r.buf == nil
}

// Release returns the buffer to its pool. It reports whether this call did
// the release; later calls and calls on a nil Rental are no-ops.
func (r *Rental) Release() bool {
	if r == nil || r.buf == nil {
		return false
	}
	buf := r.buf
	r.buf = nil
	r.owner.outstanding.Add(-1)

	if cap(*buf) <= maxPooledCap {
		*buf = (*buf)[:0]
		r.owner.pool.Put(buf)
	}
	return true
}
