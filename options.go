package path2d

import "log/slog"

// Option configures a Path during creation.
//
// Example:
//
//	p := path2d.New(path2d.WithCapacity(64), path2d.WithLogger(logger))
type Option func(*options)

// options holds optional configuration for Path creation.
type options struct {
	capacity int
	logger   *slog.Logger
}

func buildOptions(opts []Option) options {
	o := options{capacity: 16}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithCapacity preallocates room for n segments.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.capacity = n
		}
	}
}

// WithLogger sets a logger for this path only. A nil logger, or no
// WithLogger option at all, means the package logger from Logger is used
// at the time of each log call.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
