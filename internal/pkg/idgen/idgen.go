// internal/pkg/idgen/idgen.go
package idgen

import (
	"sync"
	"time"
)

// Generator hands out process-local record IDs based on the millisecond
// clock, incrementing when the clock has not advanced so IDs are strictly
// increasing within the process. Good enough as a primary-key source for a
// single-instance admin backend.
type Generator struct {
	mu   sync.Mutex
	last int64
}

func New() *Generator {
	return &Generator{}
}

// Next returns the next ID.
func (g *Generator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	now := time.Now().UnixMilli()
	if now <= g.last {
		g.last++
	} else {
		g.last = now
	}
	return g.last
}
