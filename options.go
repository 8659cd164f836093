package nativebridge

import "go.uber.org/zap"

type options struct {
	logger         *zap.Logger
	colors         ColorExtractor
	metrics        DisplayMetrics
	preferredWidth float32
}

func newOptions(opts []Option) options {
	o := options{
		logger:         zap.NewNop(),
		colors:         ColorParser{},
		preferredWidth: DefaultPreferredWidth,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Option configures a Factory.
type Option func(*options)

// WithLogger sets the logger used by the factory and the objects it creates.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithColorExtractor replaces the default ColorParser.
func WithColorExtractor(c ColorExtractor) Option {
	return func(o *options) {
		if c != nil {
			o.colors = c
		}
	}
}

// WithDisplayMetrics derives the root width from the display instead of the
// configured constant.
func WithDisplayMetrics(m DisplayMetrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithPreferredWidth sets the constant root width. Non-positive values keep
// DefaultPreferredWidth.
func WithPreferredWidth(w float32) Option {
	return func(o *options) {
		if w > 0 {
			o.preferredWidth = w
		}
	}
}
