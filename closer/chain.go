package closer

// Chain records resources in the order they were acquired, so they can be released in
// the reverse order. It is how a multi-step acquisition (connection, then cursor) unwinds
// when a later step fails, and how the finished result releases everything at once.
//
// The zero value is ready to use.
type Chain struct {
	resources []any
	released  bool
}

// Push records an acquired resource. Resources pushed after the chain was released are
// released immediately.
func (c *Chain) Push(resource any) {
	if c.released {
		Quietly(resource)
		return
	}
	c.resources = append(c.resources, resource)
}

func (c *Chain) Len() int {
	return len(c.resources)
}

// ReleaseQuietly releases every resource quietly, last acquired first. Only the first call
// has an effect.
func (c *Chain) ReleaseQuietly() {
	if c.released {
		return
	}
	c.released = true

	for i := len(c.resources) - 1; i >= 0; i-- {
		Quietly(c.resources[i])
	}
	c.resources = nil
}

// Close is ReleaseQuietly as an io.Closer. It always returns nil.
func (c *Chain) Close() error {
	c.ReleaseQuietly()
	return nil
}
