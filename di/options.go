package di

// Lifetime controls how many instances a constructor-backed provider yields.
type Lifetime int

const (
	// Singleton is the default. The constructor runs once during Build and
	// the resulting instance is shared by every resolve.
	Singleton Lifetime = iota

	// Transient constructs a fresh instance on every resolve.
	Transient
)

// String returns the human-readable name of the lifetime.
func (l Lifetime) String() string {
	switch l {
	case Singleton:
		return "singleton"
	case Transient:
		return "transient"
	default:
		return "unknown"
	}
}

// settings collects per-registration configuration.
type settings struct {
	key      string
	lifetime Lifetime
}

// Option configures a single Provide or Register call.
type Option func(*settings)

// WithKey overrides the derived type-path key. Use it to hold several values
// of the same type under distinct names:
//
//	c.Provide(primary, di.WithKey("db.primary"))
//	c.Provide(replica, di.WithKey("db.replica"))
func WithKey(key string) Option {
	return func(s *settings) { s.key = key }
}

// WithLifetime sets the [Lifetime] of a constructor-backed provider. The
// default is [Singleton]. It has no effect on Provide, which always stores a
// single shared instance.
func WithLifetime(l Lifetime) Option {
	return func(s *settings) { s.lifetime = l }
}
