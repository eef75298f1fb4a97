package fixedcol

// Option is a configuration option for Stack and Queue.
type Option[T any] func(*config[T])

type config[T any] struct {
	release func(T)
}

// WithRelease sets a hook invoked exactly once for every element the
// container discards (Clear, or the unconsumed remainder of a Drain).
// Elements returned to the caller by Pop, Dequeue or Drain.Next bypass the
// hook: ownership transfers with the value.
//
// Use it for elements that own resources (open handles, pooled buffers)
// which must not be silently forgotten.
func WithRelease[T any](fn func(T)) Option[T] {
	return func(c *config[T]) {
		c.release = fn
	}
}
