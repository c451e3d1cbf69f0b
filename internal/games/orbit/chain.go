package orbit

// Chain tracks consecutive hits on bricks of the same category.
type Chain struct {
	category Category
	length   int
	best     int
}

// Hit records a hit and returns the chain bonus it earns: (n-1) times the
// category's points, where n is the chain length including this hit.
func (c *Chain) Hit(cat Category) int {
	if c.length > 0 && cat == c.category {
		c.length++
	} else {
		c.category = cat
		c.length = 1
	}
	if c.length > c.best {
		c.best = c.length
	}
	return (c.length - 1) * cat.Points()
}

// Len returns the current chain length.
func (c *Chain) Len() int {
	return c.length
}

// Category returns the category of the current chain.
func (c *Chain) Category() Category {
	return c.category
}

// Best returns the longest chain seen since creation.
func (c *Chain) Best() int {
	return c.best
}

// Break ends the current chain without touching the best.
func (c *Chain) Break() {
	c.length = 0
}
