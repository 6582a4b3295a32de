package offsetarray

type options struct {
	copyElements bool
	trackWrites  bool
	logger       *Logger
}

// Option configures Array construction.
type Option func(*options)

// WithCopy makes FromSlice and Of copy the caller's slice instead of taking
// ownership of it. Without it, later writes to the original slice are visible
// through the array and vice versa.
//
// New and FromSeq always allocate their own storage and ignore this option.
func WithCopy() Option {
	return func(o *options) {
		o.copyElements = true
	}
}

// WithWriteTracking records which slots have been assigned through Set or
// Fill. The record is queried with Written, WrittenIndices and WrittenCount.
//
// Writes made through the slice returned by Elements are not tracked.
func WithWriteTracking() Option {
	return func(o *options) {
		o.trackWrites = true
	}
}

// WithLogger sets the logger used for construction and rejected operations.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		if l == nil {
			l = NoopLogger()
		}
		o.logger = l
	}
}

func applyOptions(opts []Option) options {
	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range opts {
		fn(&o)
	}
	return o
}
