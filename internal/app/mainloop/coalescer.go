package mainloop

import "sync"

// Coalescer merges bursts of same-key loop tasks. While a key is scheduled,
// later posts replace its callback instead of scheduling again, so only the
// latest one runs.
type Coalescer struct {
	mu        sync.Mutex
	scheduled map[string]func()
	post      func(func()) bool
	destroyed bool
}

// NewCoalescer creates a coalescer scheduling through post, usually Loop.Post.
func NewCoalescer(post func(func()) bool) *Coalescer {
	if post == nil {
		panic("mainloop.NewCoalescer: post function cannot be nil")
	}
	return &Coalescer{
		scheduled: make(map[string]func()),
		post:      post,
	}
}

// Post schedules fn under key.
func (c *Coalescer) Post(key string, fn func()) {
	if fn == nil || key == "" {
		return
	}

	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return
	}
	_, pending := c.scheduled[key]
	c.scheduled[key] = fn
	c.mu.Unlock()
	if pending {
		return
	}

	if !c.post(func() { c.fire(key) }) {
		c.mu.Lock()
		delete(c.scheduled, key)
		c.mu.Unlock()
	}
}

// Pending reports whether key is scheduled and not yet run.
func (c *Coalescer) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.scheduled[key]
	return ok
}

// Cancel drops the scheduled callback for key, if any.
func (c *Coalescer) Cancel(key string) {
	c.mu.Lock()
	delete(c.scheduled, key)
	c.mu.Unlock()
}

func (c *Coalescer) fire(key string) {
	c.mu.Lock()
	fn, ok := c.scheduled[key]
	delete(c.scheduled, key)
	destroyed := c.destroyed
	c.mu.Unlock()

	if ok && !destroyed {
		fn()
	}
}

// Destroy drops all scheduled work and rejects later posts.
func (c *Coalescer) Destroy() {
	c.mu.Lock()
	c.destroyed = true
	clear(c.scheduled)
	c.mu.Unlock()
}
