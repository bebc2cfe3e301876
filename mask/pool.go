package mask

import (
	"fmt"
	"image"
	"sync"
)

// Pool holds a set of mask buffer pools, one for each frame size, so masks
// can be recycled across frames instead of being allocated per frame
type Pool struct {
	mu    sync.Mutex
	pools map[image.Point]*sync.Pool
}

// NewPool returns an empty Pool
func NewPool() *Pool {
	return &Pool{
		pools: make(map[image.Point]*sync.Pool),
	}
}

// entry returns the pool for the given frame size, registering it on first
// use
func (p *Pool) entry(width, height int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()

	size := image.Pt(width, height)
	entry, ok := p.pools[size]

	if !ok {
		entry = &sync.Pool{
			New: func() any {
				return New(width, height)
			},
		}
		p.pools[size] = entry
	}

	return entry
}

// Get returns a cleared Mask of the given frame dimensions
func (p *Pool) Get(width, height int) *Mask {

	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("invalid mask dimensions %dx%d", width, height))
	}

	m := p.entry(width, height).Get().(*Mask)
	m.Reset()

	return m
}

// Put returns a mask back into the pool for its frame size.  The caller must
// not use the mask afterwards
func (p *Pool) Put(m *Mask) {

	if m == nil {
		return
	}

	p.entry(m.width, m.height).Put(m)
}
