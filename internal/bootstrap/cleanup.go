package bootstrap

import (
	"errors"
	"sync"
)

// Cleanup collects release funcs for resources opened while the fx graph
// is being built. Run it when construction or start fails.
type Cleanup struct {
	mu  sync.Mutex
	fns []func() error
}

func (c *Cleanup) Add(fn func() error) {
	if c == nil || fn == nil {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fns = append(c.fns, fn)
}

// Run calls the release funcs in reverse order, once.
func (c *Cleanup) Run() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	fns := c.fns
	c.fns = nil
	c.mu.Unlock()

	var out error
	for i := len(fns) - 1; i >= 0; i-- {
		out = errors.Join(out, fns[i]())
	}
	return out
}
