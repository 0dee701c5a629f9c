package error

// Order selects the direction in which the context trail is rendered.
type Order int

const (
	// NewestFirst renders the most recently attached entry first.
	NewestFirst Order = iota
	// OldestFirst renders entries in insertion order.
	OldestFirst
)

func (o Order) String() string {
	switch o {
	case NewestFirst:
		return "newest-first"
	case OldestFirst:
		return "oldest-first"
	default:
		return "unknown"
	}
}

// Option configures an Error during construction via New().
type Option func(*config)

type config struct {
	order    Order
	fullPath bool
}

// WithOrder sets the render order of the context trail. Unknown values are ignored.
func WithOrder(order Order) Option {
	return func(c *config) {
		if order == NewestFirst || order == OldestFirst {
			c.order = order
		}
	}
}

// WithFullPaths records absolute file paths instead of the trimmed "dir/file.go:line" form.
func WithFullPaths() Option { return func(c *config) { c.fullPath = true } }
