package adapt

type Options struct {
	Observer Observer
}

type Option func(*Options)

// WithObserver reports every failure the policy handles to o.
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		opts.Observer = o
	}
}

func NewOptions(opts ...Option) Options {
	o := Options{}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
