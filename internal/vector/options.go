package vector

// Option configures an Array during creation.
type Option func(*config)

type config struct {
	capacity int
}

// WithCapacity preallocates n slots.
func WithCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}
